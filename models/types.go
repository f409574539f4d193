// Package models contain the request and response bodies of the cipher API
package models

// ErrorResponse is returned with every 4xx
type ErrorResponse struct {
	Error string `json:"error"`
}

// TextResponse carries the output of an encrypt or decrypt call
type TextResponse struct {
	Result string `json:"result"`
}

// AffineRequest is the body of /affine/encrypt and /affine/decrypt
type AffineRequest struct {
	Text string `json:"text"`
	A    *int   `json:"a" binding:"required"`
	B    *int   `json:"b" binding:"required"`
}

// CrackRequest is the body of /affine/crack. Plain1 and Plain2 default to E and T.
type CrackRequest struct {
	Text   string `json:"text"`
	Plain1 string `json:"plain1" binding:"omitempty,len=1"`
	Plain2 string `json:"plain2" binding:"omitempty,len=1"`
	TopK   int    `json:"topK" binding:"omitempty,min=1,max=26"`
	Rank   bool   `json:"rank"`
}

type CrackCandidate struct {
	A       int     `json:"a"`
	B       int     `json:"b"`
	Preview string  `json:"preview"`
	Score   float64 `json:"score"`
}

type CrackResponse struct {
	Candidates []CrackCandidate `json:"candidates"`
}

// KeyRequest is shared by the monoalphabetic, Vigenère and Playfair endpoints
type KeyRequest struct {
	Text string `json:"text"`
	Key  string `json:"key"`
}

// PlayfairResponse returns the grid used. Raw is set on decrypt only and keeps the fillers.
type PlayfairResponse struct {
	Result string     `json:"result"`
	Raw    string     `json:"raw,omitempty"`
	Matrix [][]string `json:"matrix"`
}

// HillRequest is the body of /hill/encrypt and /hill/decrypt
type HillRequest struct {
	Text   string  `json:"text"`
	KeyMat [][]int `json:"keyMat" binding:"required"`
}

// HillResponse echoes the key reduced mod 26 and its inverse, or null when it does not exist
type HillResponse struct {
	Result  string  `json:"result"`
	Key     [][]int `json:"key"`
	Inverse [][]int `json:"inverse"`
}

type EuclidRequest struct {
	A *int `json:"a" binding:"required"`
	M *int `json:"m" binding:"required"`
}

type Coefficients struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type EuclidResponse struct {
	GCD          int          `json:"gcd"`
	Inverse      *int         `json:"inverse"`
	Coefficients Coefficients `json:"coefficients"`
}
