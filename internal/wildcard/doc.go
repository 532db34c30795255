/*
Package wildcard implements the glob dialect used to select a project's source
files.

Both the subject path and the pattern are normalized to the host path
separator before matching, and are then compared left to right:

  - a literal character must match exactly;
  - `?` matches exactly one character, whatever it is;
  - `*` matches zero or more characters but never the path separator, so it
    stays within a single directory. As the final token it matches only when
    no separator remains in the subject;
  - `**` matches zero or more characters including separators. As the final
    token it matches the remainder unconditionally;
  - `[...]` is a character class. `x-y` is a range only when both endpoints
    are ASCII alphanumerics and the dash is neither the first nor the last
    character inside the brackets; anything else is tested for literal
    membership. A class without a closing `]` never matches.

Matching backtracks: every wildcard tries consuming 0, 1, 2, ... characters and
succeeds as soon as one branch matches the rest. Results for a (pattern
offset, subject offset) pair are memoized, which keeps adversarial patterns
polynomial without changing what matches.
*/
package wildcard
