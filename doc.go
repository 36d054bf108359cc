// Package luapat implements Lua string patterns for Go. Patterns are plain
// strings interpreted by a backtracking matcher; they are smaller than full
// regular expressions but cover most everyday matching, and they support a
// few things regular expressions do not, such as balanced-delimiter matching
// with %b and the %f frontier assertion.
//
// Character classes:
//
//   - x: (where x is not one of ^$()%.[]*+-?) matches the character x itself.
//   - .: matches any character.
//   - %a: letters, %c: control characters, %d: digits, %g: printable except
//     space, %l: lowercase, %p: punctuation, %s: space, %u: uppercase,
//     %w: alphanumerics, %x: hexadecimal digits.
//   - %x: (where x is not alphanumeric) matches x literally.
//   - [set]: matches the union of its members; members are literals, ranges
//     such as a-z, and %-classes. A leading '^' complements the set. A ']'
//     placed first and a '-' placed first or last are ordinary members.
//
// The uppercase form of a class letter matches the complement of the class.
// Classes are hardcoded ASCII; bytes above 0x7f satisfy no lowercase class
// letter and therefore every uppercase one.
//
// Pattern items:
//
//   - a single class matches one unit of that class;
//   - class* matches zero or more repetitions (longest first);
//   - class+ matches one or more repetitions (longest first);
//   - class- matches zero or more repetitions (shortest first);
//   - class? matches zero or one occurrence;
//   - %n for n in 1..9 matches a copy of capture n;
//   - %bxy matches from x to the balancing y, counting nesting;
//   - %f[set] matches the empty string at a frontier: the previous unit is
//     not in set and the current one is. Subject boundaries count as '\0'.
//
// A '^' at the start of a pattern anchors the match to the start of the
// subject; a '$' at the end anchors it to the end. Elsewhere both are
// literals.
//
// Sub-patterns in parentheses describe captures, numbered by their opening
// parenthesis. The empty capture () captures the current subject position.
//
// Subjects and patterns are byte strings; embedded zero bytes are ordinary
// units on both sides.
package luapat
