// Command cipherlab runs the lab's classical ciphers from the terminal.
package main

import (
	"cipherlab-backend/crypto"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cipherlab",
		Short:        "Encrypt, decrypt and crack classical ciphers",
		SilenceUsage: true,
	}
	root.AddCommand(
		affineCmd(),
		crackCmd(),
		monoCmd(),
		vigenereCmd(),
		playfairCmd(),
		hillCmd(),
		euclidCmd(),
	)
	return root
}

// readText joins args, or reads stdin when there are none.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func affineCmd() *cobra.Command {
	var a, b int
	var decrypt bool
	cmd := &cobra.Command{
		Use:   "affine [text]",
		Short: "Affine cipher C = (a*P + b) mod 26",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			c, err := crypto.NewAffine(a, b)
			if err != nil {
				return err
			}
			if decrypt {
				fmt.Fprintln(cmd.OutOrStdout(), c.Decrypt(text))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), c.Encrypt(text))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&a, "a", "a", 1, "multiplier, coprime with 26")
	cmd.Flags().IntVarP(&b, "b", "b", 0, "shift")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	return cmd
}

func crackCmd() *cobra.Command {
	var plain1, plain2 string
	var topK, limit int
	var rank bool
	cmd := &cobra.Command{
		Use:   "crack [ciphertext]",
		Short: "Guess affine keys from letter frequencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			opts := crypto.CrackOptions{TopK: topK, MaxCandidates: limit, Rank: rank}
			if opts.Plain1, err = singleLetter("plain1", plain1); err != nil {
				return err
			}
			if opts.Plain2, err = singleLetter("plain2", plain2); err != nil {
				return err
			}
			candidates, err := crypto.CrackAffine(text, opts)
			if err != nil {
				return err
			}
			for _, c := range candidates {
				fmt.Fprintf(cmd.OutOrStdout(), "a=%-2d b=%-2d score=%8.2f  %s\n", c.A, c.B, c.Score, c.Preview)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&plain1, "plain1", "E", "plaintext letter assumed for the most frequent ciphertext letter")
	cmd.Flags().StringVar(&plain2, "plain2", "T", "plaintext letter assumed for the second most frequent")
	cmd.Flags().IntVar(&topK, "top", 4, "how many frequent ciphertext letters to pair")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum candidates to print")
	cmd.Flags().BoolVar(&rank, "rank", false, "order candidates by closeness to English")
	return cmd
}

func singleLetter(name, s string) (rune, error) {
	r, _ := utf8.DecodeRuneInString(s)
	if utf8.RuneCountInString(s) != 1 || !crypto.Latin.Contains(r) {
		return 0, fmt.Errorf("--%s must be a single letter, got %q", name, s)
	}
	return r, nil
}

type textCipher interface {
	Encrypt(string) string
	Decrypt(string) string
}

func keyedCmd(use, short string, build func(key string) (textCipher, error)) *cobra.Command {
	var key string
	var decrypt bool
	cmd := &cobra.Command{
		Use:   use + " [text]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			c, err := build(key)
			if err != nil {
				return err
			}
			if decrypt {
				fmt.Fprintln(cmd.OutOrStdout(), c.Decrypt(text))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), c.Encrypt(text))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func monoCmd() *cobra.Command {
	return keyedCmd("mono", "Monoalphabetic substitution with a 26-letter key",
		func(key string) (textCipher, error) { return crypto.NewMonoalphabetic(key) })
}

func vigenereCmd() *cobra.Command {
	return keyedCmd("vigenere", "Vigenère cipher with a repeating keyword",
		func(key string) (textCipher, error) { return crypto.NewVigenere(key) })
}

func playfairCmd() *cobra.Command {
	var key string
	var decrypt, raw, showMatrix bool
	cmd := &cobra.Command{
		Use:   "playfair [text]",
		Short: "Playfair digraph cipher on a keyed 5×5 grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := crypto.NewPlayfair(key)
			out := cmd.OutOrStdout()
			if showMatrix {
				for _, row := range p.Matrix() {
					fmt.Fprintln(out, strings.Join(strings.Split(string(row[:]), ""), " "))
				}
				if len(args) == 0 {
					return nil
				}
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			switch {
			case !decrypt:
				fmt.Fprintln(out, p.Encrypt(text))
			case raw:
				fmt.Fprintln(out, p.Decrypt(text))
			default:
				fmt.Fprintln(out, crypto.CleanDecrypted(p.Decrypt(text)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "keyword")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	cmd.Flags().BoolVar(&raw, "raw", false, "keep filler letters when decrypting")
	cmd.Flags().BoolVar(&showMatrix, "matrix", false, "print the key grid")
	return cmd
}

func hillCmd() *cobra.Command {
	var key string
	var decrypt, trimPadding bool
	cmd := &cobra.Command{
		Use:   "hill [text]",
		Short: `Hill cipher; key rows separated by ";" e.g. "3,3;2,5"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mat, err := parseMatrix(key)
			if err != nil {
				return err
			}
			h, err := crypto.NewHill(mat)
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			if !decrypt {
				fmt.Fprintln(cmd.OutOrStdout(), h.Encrypt(text))
				return nil
			}
			out, err := h.Decrypt(text)
			if err != nil {
				return err
			}
			if trimPadding {
				out = h.TrimPadding(out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "key matrix")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")
	cmd.Flags().BoolVar(&trimPadding, "trim-padding", false,
		"drop trailing lower-case x pad letters when decrypting; a genuine trailing x is dropped too")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func parseMatrix(s string) ([][]int, error) {
	var mat [][]int
	for _, line := range strings.Split(s, ";") {
		var row []int
		for _, cell := range strings.Split(line, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("key matrix entry %q: %w", cell, err)
			}
			row = append(row, v)
		}
		mat = append(mat, row)
	}
	return mat, nil
}

func euclidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "euclid a m",
		Short: "Extended Euclid: gcd, Bézout coefficients and inverse of a mod m",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("a: %w", err)
			}
			m, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("m: %w", err)
			}
			res := crypto.Euclid(a, m)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gcd(%d, %d) = %d\n", a, m, res.GCD)
			fmt.Fprintf(out, "%d*(%d) + %d*(%d) = %d\n", a, res.X, m, res.Y, res.GCD)
			if res.Inverse != nil {
				fmt.Fprintf(out, "inverse of %d mod %d = %d\n", a, m, *res.Inverse)
			} else {
				fmt.Fprintf(out, "%d has no inverse mod %d\n", a, m)
			}
			return nil
		},
	}
}
