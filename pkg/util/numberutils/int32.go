package numberutils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt32WithError converts the given string to an int32. Values outside the int32 range are an error.
func ToInt32WithError(str string) (int32, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(str), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(i), nil
}

// ToPositiveInt32 converts str to an int32 greater than zero.
func ToPositiveInt32(str string) (int32, error) {
	i, err := ToInt32WithError(str)
	if err != nil {
		return 0, err
	}
	if i <= 0 {
		return 0, fmt.Errorf("value %d must be greater than zero", i)
	}
	return i, nil
}
