// Package handlers is made to handle requests
package handlers

import (
	"cipherlab-backend/crypto"
	"cipherlab-backend/models"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CipherHandler struct {
	log *logrus.Logger
}

func NewCipherHandler(log *logrus.Logger) *CipherHandler {
	if log == nil {
		log = logrus.New()
	}
	return &CipherHandler{log: log}
}

// Register mounts every cipher route on group
func (h *CipherHandler) Register(group *gin.RouterGroup) {
	group.GET("/health", h.HealthCheck)

	affine := group.Group("/affine")
	{
		affine.POST("/encrypt", h.AffineEncrypt)
		affine.POST("/decrypt", h.AffineDecrypt)
		affine.POST("/crack", h.AffineCrack)
	}

	mono := group.Group("/mono")
	{
		mono.POST("/encrypt", h.MonoEncrypt)
		mono.POST("/decrypt", h.MonoDecrypt)
	}

	vigenere := group.Group("/vigenere")
	{
		vigenere.POST("/encrypt", h.VigenereEncrypt)
		vigenere.POST("/decrypt", h.VigenereDecrypt)
	}

	playfair := group.Group("/playfair")
	{
		playfair.POST("/encrypt", h.PlayfairEncrypt)
		playfair.POST("/decrypt", h.PlayfairDecrypt)
	}

	hill := group.Group("/hill")
	{
		hill.POST("/encrypt", h.HillEncrypt)
		hill.POST("/decrypt", h.HillDecrypt)
	}

	group.POST("/euclid", h.Euclid)
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher lab API is running",
		"version": "1.0.0",
	})
}

// NotFound answers unknown routes
func (h *CipherHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Not Found"})
}

func (h *CipherHandler) AffineEncrypt(c *gin.Context) {
	h.affine(c, (*crypto.Affine).Encrypt)
}

func (h *CipherHandler) AffineDecrypt(c *gin.Context) {
	h.affine(c, (*crypto.Affine).Decrypt)
}

func (h *CipherHandler) affine(c *gin.Context, op func(*crypto.Affine, string) string) {
	var req models.AffineRequest
	if !h.bind(c, &req, "Expected { text:string, a:int, b:int }") {
		return
	}
	cipher, err := crypto.NewAffine(*req.A, *req.B)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TextResponse{Result: op(cipher, req.Text)})
}

func (h *CipherHandler) AffineCrack(c *gin.Context) {
	var req models.CrackRequest
	if !h.bind(c, &req, "Expected { text:string, plain1?:char, plain2?:char }") {
		return
	}

	opts := crypto.CrackOptions{TopK: req.TopK, Rank: req.Rank}
	if req.Plain1 != "" {
		opts.Plain1, _ = utf8.DecodeRuneInString(req.Plain1)
	}
	if req.Plain2 != "" {
		opts.Plain2, _ = utf8.DecodeRuneInString(req.Plain2)
	}

	candidates, err := crypto.CrackAffine(req.Text, opts)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := models.CrackResponse{Candidates: make([]models.CrackCandidate, 0, len(candidates))}
	for _, cand := range candidates {
		resp.Candidates = append(resp.Candidates, models.CrackCandidate{
			A:       cand.A,
			B:       cand.B,
			Preview: cand.Preview,
			Score:   cand.Score,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CipherHandler) MonoEncrypt(c *gin.Context) {
	h.mono(c, (*crypto.Monoalphabetic).Encrypt)
}

func (h *CipherHandler) MonoDecrypt(c *gin.Context) {
	h.mono(c, (*crypto.Monoalphabetic).Decrypt)
}

func (h *CipherHandler) mono(c *gin.Context, op func(*crypto.Monoalphabetic, string) string) {
	var req models.KeyRequest
	if !h.bind(c, &req, "Expected { text:string, key:string }") {
		return
	}
	cipher, err := crypto.NewMonoalphabetic(req.Key)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TextResponse{Result: op(cipher, req.Text)})
}

func (h *CipherHandler) VigenereEncrypt(c *gin.Context) {
	h.vigenere(c, (*crypto.Vigenere).Encrypt)
}

func (h *CipherHandler) VigenereDecrypt(c *gin.Context) {
	h.vigenere(c, (*crypto.Vigenere).Decrypt)
}

func (h *CipherHandler) vigenere(c *gin.Context, op func(*crypto.Vigenere, string) string) {
	var req models.KeyRequest
	if !h.bind(c, &req, "Expected { text:string, key:string }") {
		return
	}
	cipher, err := crypto.NewVigenere(req.Key)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TextResponse{Result: op(cipher, req.Text)})
}

func (h *CipherHandler) PlayfairEncrypt(c *gin.Context) {
	var req models.KeyRequest
	if !h.bind(c, &req, "Expected { text:string, key:string }") {
		return
	}
	cipher := crypto.NewPlayfair(req.Key)
	c.JSON(http.StatusOK, models.PlayfairResponse{
		Result: cipher.Encrypt(req.Text),
		Matrix: matrixRows(cipher.Matrix()),
	})
}

func (h *CipherHandler) PlayfairDecrypt(c *gin.Context) {
	var req models.KeyRequest
	if !h.bind(c, &req, "Expected { text:string, key:string }") {
		return
	}
	cipher := crypto.NewPlayfair(req.Key)
	raw := cipher.Decrypt(req.Text)
	c.JSON(http.StatusOK, models.PlayfairResponse{
		Result: crypto.CleanDecrypted(raw),
		Raw:    raw,
		Matrix: matrixRows(cipher.Matrix()),
	})
}

func matrixRows(m [5][5]rune) [][]string {
	rows := make([][]string, len(m))
	for i, row := range m {
		rows[i] = make([]string, len(row))
		for j, r := range row {
			rows[i][j] = string(r)
		}
	}
	return rows
}

func (h *CipherHandler) HillEncrypt(c *gin.Context) {
	var req models.HillRequest
	if !h.bind(c, &req, "Invalid matrix") {
		return
	}
	cipher, err := crypto.NewHill(req.KeyMat)
	if err != nil {
		h.fail(c, err)
		return
	}
	inverse, _ := cipher.Inverse()
	c.JSON(http.StatusOK, models.HillResponse{
		Result:  cipher.Encrypt(req.Text),
		Key:     cipher.Key(),
		Inverse: inverse,
	})
}

func (h *CipherHandler) HillDecrypt(c *gin.Context) {
	var req models.HillRequest
	if !h.bind(c, &req, "Invalid matrix") {
		return
	}
	cipher, err := crypto.NewHill(req.KeyMat)
	if err != nil {
		h.fail(c, err)
		return
	}
	result, err := cipher.Decrypt(req.Text)
	if err != nil {
		h.fail(c, err)
		return
	}
	inverse, _ := cipher.Inverse()
	c.JSON(http.StatusOK, models.HillResponse{
		Result:  result,
		Key:     cipher.Key(),
		Inverse: inverse,
	})
}

func (h *CipherHandler) Euclid(c *gin.Context) {
	var req models.EuclidRequest
	if !h.bind(c, &req, "Expected { a:int, m:int }") {
		return
	}
	res := crypto.Euclid(*req.A, *req.M)
	c.JSON(http.StatusOK, models.EuclidResponse{
		GCD:          res.GCD,
		Inverse:      res.Inverse,
		Coefficients: models.Coefficients{X: res.X, Y: res.Y},
	})
}

func (h *CipherHandler) bind(c *gin.Context, req any, usage string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.log.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err,
		}).Debug("rejected request body")
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: usage})
		return false
	}
	return true
}

// fail maps a cipher error to a 400. Every error the crypto package returns is a
// problem with the caller's input.
func (h *CipherHandler) fail(c *gin.Context, err error) {
	kind := "unknown"
	switch {
	case errors.Is(err, crypto.ErrNotInvertible):
		kind = "not_invertible"
	case errors.Is(err, crypto.ErrInvalidKey):
		kind = "invalid_key"
	case errors.Is(err, crypto.ErrNoInverse):
		kind = "no_inverse"
	case errors.Is(err, crypto.ErrEmptyAnalysis):
		kind = "empty_analysis"
	}
	h.log.WithFields(logrus.Fields{
		"path": c.FullPath(),
		"kind": kind,
	}).Infof("cipher request rejected: %v", err)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
}
