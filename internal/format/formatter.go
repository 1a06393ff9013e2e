package format

import (
	"github.com/davejbax/go-datetimepicker/internal/calendar"
	"github.com/elliotwutingfeng/asciiset"
	"strconv"
	"strings"
)

// DefaultLayout is the layout used when none is configured.
const DefaultLayout = "yyyy-MM-dd HH:mm"

const quote = '\''

// tokens lists the recognised layout tokens. A token is matched at the current position only; once emitted, output
// is never scanned again, so a substituted value can never be mistaken for a later token.
var tokens = []string{"yyyy", "MM", "dd", "HH", "hh", "mm", "a"}

// tokenStarts holds the first letter of every token, so that literal runs can be copied without trying each token.
var tokenStarts = mustASCIISet("yMdHhma")

func mustASCIISet(chars string) asciiset.ASCIISet {
	set, ok := asciiset.MakeASCIISet(chars)
	if !ok {
		panic("token letters must be ASCII")
	}
	return set
}

type chunk struct {
	token   string
	literal string
}

// tokenize splits a layout into tokens and literal text in a single left-to-right pass. Text between single quotes
// is literal, and two consecutive single quotes produce one quote character, inside or outside a quoted section. An
// unterminated quote runs to the end of the layout.
func tokenize(layout string) []chunk {
	var chunks []chunk
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			chunks = append(chunks, chunk{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(layout); {
		c := layout[i]

		if c == quote {
			if i+1 < len(layout) && layout[i+1] == quote {
				literal.WriteByte(quote)
				i += 2
				continue
			}

			for i++; i < len(layout); i++ {
				if layout[i] != quote {
					literal.WriteByte(layout[i])
					continue
				}
				if i+1 < len(layout) && layout[i+1] == quote {
					literal.WriteByte(quote)
					i++
					continue
				}
				break
			}
			i++
			continue
		}

		if tokenStarts.Contains(c) {
			if token, ok := matchToken(layout[i:]); ok {
				flush()
				chunks = append(chunks, chunk{token: token})
				i += len(token)
				continue
			}
		}

		literal.WriteByte(c)
		i++
	}

	flush()
	return chunks
}

func matchToken(s string) (string, bool) {
	for _, token := range tokens {
		if strings.HasPrefix(s, token) {
			return token, true
		}
	}
	return "", false
}

// Format renders v according to layout. A nil value renders as the empty string.
//
// Recognised tokens are yyyy (year at natural width), MM, dd, HH, mm (two digits), hh and a. The hh token uses the
// 12-hour clock (1-12) when timeFormat is [TwelveHour] and the 24-hour clock otherwise; a renders AM or PM.
// Everything else, including letters that do not form a token, is copied through unchanged.
func Format(v *calendar.DateTime, layout string, timeFormat TimeFormat) string {
	if v == nil {
		return ""
	}

	var out strings.Builder
	for _, c := range tokenize(layout) {
		if c.token == "" {
			out.WriteString(c.literal)
			continue
		}

		switch c.token {
		case "yyyy":
			out.WriteString(strconv.Itoa(v.Year))
		case "MM":
			out.WriteString(pad2(int(v.Month)))
		case "dd":
			out.WriteString(pad2(v.Day))
		case "HH":
			out.WriteString(pad2(v.Hour))
		case "hh":
			if timeFormat == TwelveHour {
				out.WriteString(pad2(hour12(v.Hour)))
			} else {
				out.WriteString(pad2(v.Hour))
			}
		case "mm":
			out.WriteString(pad2(v.Minute))
		case "a":
			out.WriteString(period(v.Hour))
		}
	}

	return out.String()
}

func pad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
