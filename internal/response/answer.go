package response

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/abhisek/quizshell/internal/assessment"
)

// CheckAnswer compares a typed answer against the expected one.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - Text comparison is case-folded, Unicode-normalized (NFC) and collapses
//     inner whitespace
//   - Integers ignore leading zeros ("007" matches "7")
//   - Decimals ignore trailing zeros ("3.50" matches "3.5")
//   - Fractions accept equivalent forms ("2/4" matches "1/2")
func CheckAnswer(input, answer string, answerType assessment.AnswerType) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	got, err := normalizeAnswer(input, answerType)
	if err != nil {
		return false
	}
	want, err := normalizeAnswer(answer, answerType)
	if err != nil {
		return false
	}
	return got == want
}

func normalizeAnswer(answer string, answerType assessment.AnswerType) (string, error) {
	answer = strings.TrimSpace(answer)

	switch answerType {
	case assessment.AnswerTypeInteger:
		n, err := strconv.ParseInt(answer, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid integer: %w", err)
		}
		return strconv.FormatInt(n, 10), nil

	case assessment.AnswerTypeDecimal:
		f, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return "", fmt.Errorf("invalid decimal: %w", err)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil

	case assessment.AnswerTypeFraction:
		num, den, err := parseFraction(answer)
		if err != nil {
			return "", err
		}
		if den == 0 {
			return "", fmt.Errorf("zero denominator")
		}
		if den < 0 {
			num = -num
			den = -den
		}
		g := gcd(abs(num), den)
		if g == 0 {
			g = 1
		}
		return fmt.Sprintf("%d/%d", num/g, den/g), nil

	default:
		collapsed := strings.Join(strings.Fields(answer), " ")
		return cases.Fold().String(norm.NFC.String(collapsed)), nil
	}
}

// parseFraction parses "a/b" into numerator and denominator. A bare
// integer is read as a/1.
func parseFraction(s string) (int64, int64, error) {
	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	if len(parts) == 1 {
		return num, 1, nil
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}

// gcd returns the greatest common divisor of non-negative a and b.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
