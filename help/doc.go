// Package help renders help text from argv templates.
//
// A [Format] produces the label for each option and subcommand. [Posix]
// writes labels like "-o, --output=FILE" with dot leaders before the
// description; [Microsoft] writes "/O, /OUTPUT:FILE". Labels of siblings
// are measured first and every description is then aligned past the widest
// label in its group:
//
//	-v, --verbose ...... Print more
//	-o, --output=FILE .. Write to FILE
//	build|b ............ Compile the project
//	        --target=TRIPLE  Target triple
//
// Output depends only on the template and format, so rendering the same
// unmodified template twice yields identical text.
package help
