package model

import "strconv"

// Normalize repairs free-form integer text to fit [low, high]. Empty text
// becomes str(low); values below low become str(low) and above high become
// str(high). Text that does not parse as an integer is repaired to str(low)
// as well -- the entry widget filters input down to digits, so this path only
// exists to keep the contract total.
//
// The UI calls this on every edit commit before handing text to the model,
// so out-of-range entry is silently fixed up, never rejected with a dialog.
func Normalize(text string, low, high int) string {
	if text == "" {
		return strconv.Itoa(low)
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return strconv.Itoa(low)
	}

	if n < low {
		return strconv.Itoa(low)
	}
	if n > high {
		return strconv.Itoa(high)
	}
	return text
}
