/*
Package calc evaluates arithmetic expressions over float64.

Grammars

	expr     --> term exprTail ;
	exprTail --> ( "+" | "-" ) term exprTail | ε ;
	term     --> factor termTail ;
	termTail --> ( "*" | "/" ) factor termTail | ε ;
	factor   --> NEG "*" factor | NUMBER | "(" expr ")" ;
	NUMBER   --> DIGIT+ ( "." DIGIT+ )? ;

Signs are rewritten by the scanner before parsing:
+ "a - b" is scanned as "a + -1 * b".
+ "-a" is scanned as "-1 * a", where "-1" is a NEG token that only scales the
factor right after it.
+ A leading '+' is dropped.
+ Runs such as "--" or "+-" are rejected.

The parser builds a binary tree stored in a kary.Tree, which the evaluator
folds in post-order into a single number.
*/
package calc
