package alignment

import "github.com/charmbracelet/lipgloss"

// Alphabet is the inferred character set of an alignment
type Alphabet int

const (
	Nucleic Alphabet = iota
	Protein
)

func (a Alphabet) String() string {
	if a == Protein {
		return "protein"
	}
	return "nucleic"
}

// ANSI palette used for residues
var (
	ColorRed           = lipgloss.Color("1")
	ColorGreen         = lipgloss.Color("2")
	ColorYellow        = lipgloss.Color("3")
	ColorBlue          = lipgloss.Color("4")
	ColorMagenta       = lipgloss.Color("5")
	ColorCyan          = lipgloss.Color("6")
	ColorWhite         = lipgloss.Color("7")
	ColorBrightRed     = lipgloss.Color("9")
	ColorBrightMagenta = lipgloss.Color("13")
)

// isNucleotide reports whether c belongs to {A,C,G,T,U,-}, ignoring case
func isNucleotide(c byte) bool {
	switch c {
	case 'A', 'a', 'C', 'c', 'G', 'g', 'T', 't', 'U', 'u', '-':
		return true
	}
	return false
}

// Classify scans every character of seqs. Any character outside the
// nucleotide set makes the alignment Protein. Empty input is Nucleic.
func Classify(seqs []string) Alphabet {
	for _, seq := range seqs {
		for i := 0; i < len(seq); i++ {
			if !isNucleotide(seq[i]) {
				return Protein
			}
		}
	}
	return Nucleic
}

// Colorize returns the display color of residue c
func (a Alphabet) Colorize(c byte) lipgloss.Color {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}

	if a == Nucleic {
		switch c {
		case 'A':
			return ColorRed
		case 'C':
			return ColorYellow
		case 'G':
			return ColorBlue
		case 'T', 'U':
			return ColorGreen
		}
		return ColorWhite
	}

	switch c {
	case 'A', 'I', 'L', 'M', 'F', 'W', 'V':
		return ColorBlue
	case 'K', 'R':
		return ColorRed
	case 'E', 'D':
		return ColorMagenta
	case 'N', 'Q', 'S', 'T':
		return ColorGreen
	case 'C':
		return ColorBrightMagenta
	case 'G':
		return ColorBrightRed
	case 'P':
		return ColorYellow
	case 'H', 'Y':
		return ColorCyan
	}
	return ColorWhite
}
