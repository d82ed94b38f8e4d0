/* Command esh is an interactive Unix shell whose builtin surface syntax is
S-expression based: every builtin invocation is written as a parenthesised
command (name arg ...), and a top-level line that does not start with '('
is instead parsed as a "fancy" pipeline of external programs with optional
redirection, the way a conventional shell would read it.

The interesting engineering lives in the interpreter core, not in the
roughly ninety builtins it hosts:

  - a tokenizer turning a byte stream into words and special characters
  - a parser with two distinct top-level modes, S-expression and pipeline
  - an evaluator that reduces a parsed value tree, honoring the '~'/'$'
    delay (quote) operators
  - a small, heterogeneous, reference-counted-where-it-matters Value model
  - a job/pipeline engine that forks external programs, manages process
    groups, and hands the controlling terminal back and forth between the
    shell and its foreground job

Line editing and completion, terminal colorizing, and startup-file
discovery are kept behind small interfaces (LineSource, Colorizer) so that
this package owns only the parts that are specific to esh; see
linesource.go and colorizer.go for their default, swappable
implementations.
*/
package main
