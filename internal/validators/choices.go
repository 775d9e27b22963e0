package validators

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var genders = map[string]bool{
	"M": true,
	"F": true,
	"U": true,
}

var lengths = map[string]bool{
	"short":  true,
	"medium": true,
	"long":   true,
}

func IsValidGender(g string) bool {
	return genders[g]
}

func IsValidLength(l string) bool {
	return lengths[l]
}

func IsValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func IsValidClockTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}
