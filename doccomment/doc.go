// Package doccomment parses block documentation comments into a structured
// [DocComment] model.
//
// # Comment Layout
//
// A doc-comment is the text of a "/** ... */" block. [Parse] strips the
// opening and closing delimiters and, on every line, the leading whitespace,
// an optional "*" decoration and one following space:
//
//	/**
//	 * Adds two numbers.
//	 *
//	 * @param {number} a - The first addend.
//	 * @param {number} [b=0] - The second addend.
//	 * @returns {number}
//	 */
//
// Lines before the first line starting with "@" followed by a word character
// form the description, split into paragraphs on blank lines. Every line
// starting with "@word" opens a new tag, whose body runs until the next tag
// or the end of the comment. Body lines are joined with "\n".
//
// # Tag Bodies
//
// Tags listed by [tagschema.CarriesType] may start with a {type} block. The
// block is found with a balanced-brace scan, so record and generic types may
// contain braces, and its contents are handed to [typeexpr.Parse]. A block
// without a closing brace still yields a type: [typeexpr.Unknown] holding the
// rest of the body.
//
// Param-family tags (param, arg, argument) then carry a parameter name,
// written bare or in brackets to mark it optional, with an optional default
// value:
//
//	@param {string} name
//	@param {string} [name]
//	@param {string} [name=world]
//
// A token starting with "-" is the description's hyphen marker, never a
// name. Whatever remains is the tag description.
//
// # Names
//
// [Tag.Name] is lower-cased and alias-normalized: arg and argument become
// param. The keyword as written is kept lower-cased in [Tag.Keyword] and
// verbatim in [Tag.Raw].
//
// Parsing never fails. An empty comment yields a [DocComment] with no
// description and no tags.
package doccomment
