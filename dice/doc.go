/*
Package dice evaluates tabletop dice notation.

An expression is a single line such as "2d6+3" or "x = 1d20 - 2".
Evaluating it yields an integer value together with a text derivation
showing every individual die outcome, so "2d6+3" may come back as 9 with
the text "[4, 2] + 3".

Grammar

	start    --> sum | NAME "=" sum ;
	sum      --> product ( ( "+" | "-" ) product )* ;
	product  --> dice ( ( "*" | "/" ) dice )* ;
	dice     --> atom | count? ( "d" | "D" ) size? modifier? ;
	modifier --> ( "h" | "H" ) atom | ( "l" | "L" ) atom ;
	count    --> atom ;
	size     --> atom ;
	atom     --> NUMBER | "-" atom | NAME | "(" sum ")" ;
	NUMBER   --> /[0-9]+/ ;
	NAME     --> /[a-z_]+/ ;

Every part of a die is optional: a lone "d" rolls one twenty-sided die.
The modifier keeps only the highest ("h") or lowest ("l") outcomes, so
"4d6h3" rolls four six-sided dice and sums the best three. A die size
below one is clamped to zero and such dice always land on zero.

Division floors toward negative infinity. Values are machine-sized ints
and arithmetic wraps silently on overflow.

Assignments such as "x = 2d6" bind the rolled value for the rest of the
session; later expressions substitute the name where it appears in their
text.
*/
package dice
