package gen

import "strconv"

// ordinals names the tuple positions, continuing the scheme the hand-written
// tuple package used for its first six positions. Position i (0-based) maps
// to ordinals[i]; the table covers every arity up to MaxSupportedArity.
var ordinals = [...]string{
	"first", "second", "third", "fourth", "fifth",
	"sixth", "seventh", "eighth", "ninth", "tenth",
	"eleventh", "twelfth", "thirteenth", "fourteenth", "fifteenth",
	"sixteenth", "seventeenth", "eighteenth", "nineteenth", "twentieth",
	"twentyFirst", "twentySecond", "twentyThird", "twentyFourth", "twentyFifth",
	"twentySixth", "twentySeventh", "twentyEighth", "twentyNinth", "thirtieth",
	"thirtyFirst", "thirtySecond", "thirtyThird", "thirtyFourth", "thirtyFifth",
	"thirtySixth", "thirtySeventh", "thirtyEighth", "thirtyNinth", "fortieth",
	"fortyFirst", "fortySecond", "fortyThird", "fortyFourth", "fortyFifth",
	"fortySixth", "fortySeventh", "fortyEighth", "fortyNinth", "fiftieth",
}

// TypeParams returns the ordered list of n distinct type parameter names.
// The same n always yields the same names in the same order: TypeParams(n)[i]
// binds to tuple position i.
func TypeParams(n int) []string {
	params := make([]string, n)
	for i := range params {
		params[i] = "T" + strconv.Itoa(i+1)
	}

	return params
}

// Field returns the struct field name for tuple position i (0-based).
func Field(i int) string {
	return ordinals[i]
}

// Accessor returns the exported accessor name for tuple position i (0-based).
func Accessor(i int) string {
	name := ordinals[i]

	return string(name[0]-'a'+'A') + name[1:]
}
