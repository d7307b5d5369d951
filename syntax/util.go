package syntax

// isASCIILetter checks if a given character is an ASCII letter.
func isASCIILetter(b rune) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// isDigit checks if the given character is a decimal digit.
func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isDigitByte checks if the given byte is a decimal digit.
func isDigitByte(c byte) bool {
	return isDigit(rune(c))
}

// isOctDigit checks if the given character is an octal digit.
func isOctDigit(b rune) bool {
	return '0' <= b && b <= '7'
}

// isHexDigitByte checks if the given byte is a hexadecimal digit.
func isHexDigitByte(r byte) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// toDigit returns the corresponding integer value of a character.
// The character must be a digit in the set "0123456789".
func toDigit(b rune) int {
	return int(b) - '0'
}

// toDigitByte returns the corresponding integer value of a byte representing a character.
// The byte must be a digit in the set "0123456789".
func toDigitByte(b byte) int {
	return toDigit(rune(b))
}

// isWhitespace checks if a given character is a whitespace character.
func isWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// isGroupNameStart checks if a character may start a capture group name.
func isGroupNameStart(c rune) bool {
	return isASCIILetter(c) || c == '_'
}

// isGroupNameChar checks if a character may appear in a capture group name.
func isGroupNameChar(c rune) bool {
	return isGroupNameStart(c) || isDigit(c)
}

// validGroupName checks that a capture group name is a valid identifier.
func validGroupName(name string) bool {
	for i, c := range name {
		if i == 0 {
			if !isGroupNameStart(c) {
				return false
			}
		} else if !isGroupNameChar(c) {
			return false
		}
	}

	return name != ""
}
