// Package pattern compiles shell-style glob patterns into case-insensitive,
// anchored matchers.
//
// # Pattern syntax
//
//   - `*` matches any run of characters except `/`
//   - `?` matches exactly one character except `/`
//   - `[abc]`, `[a-z]`, `[!a-z]` match one character of a class
//   - `{a,b}` matches one of the comma separated alternatives
//   - `\` escapes the next character
//
// # Segment-split patterns
//
// A pattern containing `/` does not match a single name. Its first segment
// routes the match into a child directory and the remainder applies inside
// it (`sub/*.data` selects `*.data` files of `sub`). The first segment is
// compared literally when it has no glob metacharacters, matched as a glob
// otherwise, and `**` stands for zero or more directories. A Set keeps the
// original patterns and answers, per directory level, which patterns apply
// to the names of that level (Local) and what a child directory inherits
// (Child).
//
// # Archive paths
//
// Archives store flat entry names. CompilePaths builds a PathMatcher that
// works on full forward-slash names and widens includes that name a
// directory so they select the directory contents.
package pattern
