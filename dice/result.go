package dice

import "fmt"

// Result pairs the value of an expression with the text retracing how the
// value came to be, every individual die outcome included.
type Result struct {
	Value int
	Text  string
}

func (result Result) String() string {
	return fmt.Sprintf("%s = %d", result.Text, result.Value)
}
