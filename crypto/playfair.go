package crypto

const playfairSize = 5

type gridPos struct {
	row, col int
}

// Playfair substitutes digraphs through a keyed 5×5 grid of A–Z with J merged into I.
type Playfair struct {
	grid [playfairSize][playfairSize]rune
	pos  map[rune]gridPos
}

// NewPlayfair lays out the keyword letters (deduplicated, J as I) followed by the rest of
// the alphabet. Any keyword is accepted; an empty one yields the plain alphabet grid.
func NewPlayfair(keyword string) *Playfair {
	p := &Playfair{pos: make(map[rune]gridPos, playfairSize*playfairSize)}
	k := 0
	place := func(r rune) {
		if _, ok := p.pos[r]; ok {
			return
		}
		at := gridPos{row: k / playfairSize, col: k % playfairSize}
		p.grid[at.row][at.col] = r
		p.pos[r] = at
		k++
	}
	for _, r := range keyword {
		if u, ok := playfairLetter(r); ok {
			place(u)
		}
	}
	for r := 'A'; r <= 'Z'; r++ {
		if r != 'J' {
			place(r)
		}
	}
	return p
}

// Matrix returns the grid row-major.
func (p *Playfair) Matrix() [playfairSize][playfairSize]rune {
	return p.grid
}

// Encrypt splits doubled letters with a filler, pads an odd tail, and writes the
// ciphertext back over the original letter positions. Letters the fillers push past the
// last original position are appended in upper case.
func (p *Playfair) Encrypt(text string) string {
	runes, letters, slots := playfairLetters(text)
	return p.reinsert(runes, slots, p.transform(digraphs(letters), 1))
}

// Decrypt undoes Encrypt but leaves fillers in place. See CleanDecrypted.
func (p *Playfair) Decrypt(text string) string {
	runes, letters, slots := playfairLetters(text)
	var pairs [][2]rune
	for i := 0; i < len(letters); i += 2 {
		if i+1 == len(letters) {
			pairs = append(pairs, [2]rune{letters[i], playfairFiller(letters[i])})
			break
		}
		pairs = append(pairs, [2]rune{letters[i], letters[i+1]})
	}
	return p.reinsert(runes, slots, p.transform(pairs, -1))
}

func (p *Playfair) transform(pairs [][2]rune, shift int) []rune {
	out := make([]rune, 0, 2*len(pairs))
	for _, pair := range pairs {
		a, b := p.pos[pair[0]], p.pos[pair[1]]
		switch {
		case a.row == b.row:
			out = append(out,
				p.grid[a.row][Mod(a.col+shift, playfairSize)],
				p.grid[b.row][Mod(b.col+shift, playfairSize)])
		case a.col == b.col:
			out = append(out,
				p.grid[Mod(a.row+shift, playfairSize)][a.col],
				p.grid[Mod(b.row+shift, playfairSize)][b.col])
		default:
			out = append(out, p.grid[a.row][b.col], p.grid[b.row][a.col])
		}
	}
	return out
}

func (p *Playfair) reinsert(runes []rune, slots []int, out []rune) string {
	res := make([]rune, len(runes), len(runes)+len(out)-len(slots))
	copy(res, runes)
	for k, slot := range slots {
		res[slot] = withCase(out[k], runes[slot])
	}
	return string(append(res, out[len(slots):]...))
}

// digraphs pairs letters for encryption. A doubled pair is split by a filler and a lone
// final letter is padded with one.
func digraphs(letters []rune) [][2]rune {
	var pairs [][2]rune
	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 == len(letters) || letters[i+1] == a {
			pairs = append(pairs, [2]rune{a, playfairFiller(a)})
			i++
			continue
		}
		pairs = append(pairs, [2]rune{a, letters[i+1]})
		i += 2
	}
	return pairs
}

// playfairFiller is X, or Q when the letter being split or padded is itself X.
func playfairFiller(r rune) rune {
	if r == 'X' {
		return 'Q'
	}
	return 'X'
}

// playfairLetter accepts ASCII letters only.
func playfairLetter(r rune) (rune, bool) {
	u := r
	if 'a' <= r && r <= 'z' {
		u = r - 'a' + 'A'
	}
	if u < 'A' || u > 'Z' {
		return 0, false
	}
	if u == 'J' {
		u = 'I'
	}
	return u, true
}

func playfairLetters(text string) (runes, letters []rune, slots []int) {
	runes = []rune(text)
	for i, r := range runes {
		if u, ok := playfairLetter(r); ok {
			letters = append(letters, u)
			slots = append(slots, i)
		}
	}
	return runes, letters, slots
}

// CleanDecrypted strips the fillers Encrypt inserts from decrypted text: a filler in the
// second half of a digraph that sits between two equal letters, and a filler padding the
// final digraph. Remaining letters are laid back over the letter positions of text so
// punctuation stays put. This is a heuristic; a genuine X in those spots is removed too.
func CleanDecrypted(text string) string {
	runes, letters, slots := playfairLetters(text)
	kept := make([]rune, 0, len(letters))
	for i, r := range letters {
		if i%2 == 1 && r == playfairFiller(letters[i-1]) {
			last := i == len(letters)-1
			if last || letters[i+1] == letters[i-1] {
				continue
			}
		}
		kept = append(kept, r)
	}

	out := make([]rune, 0, len(runes))
	k := 0
	for i, r := range runes {
		if k < len(slots) && slots[k] == i {
			if k < len(kept) {
				out = append(out, withCase(kept[k], r))
			}
			k++
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func PlayfairEncrypt(text, keyword string) string {
	return NewPlayfair(keyword).Encrypt(text)
}

func PlayfairDecrypt(text, keyword string) string {
	return NewPlayfair(keyword).Decrypt(text)
}
