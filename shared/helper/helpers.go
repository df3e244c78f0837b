package helper

import "fmt"

// Stringify returns the text form of v, preferring its fmt.Stringer
// implementation when it has one. This is the single definition of "the
// string form of a header, identifier or cell value" shared by rendering,
// hashing and the sheet bridge, so the three stay in agreement.
func Stringify(v any) string {
	if stringer, ok := v.(fmt.Stringer); ok {
		return stringer.String()
	}
	return fmt.Sprintf("%v", v)
}
