package utils

import "strconv"

// FormatUserID renders a numeric user id the way external stores key it
func FormatUserID(id uint) string {
	return "u" + strconv.FormatUint(uint64(id), 10)
}
