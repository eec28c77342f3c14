// Package jsfunc extracts functions and their doc-comments from JavaScript
// source, providing the [signature.View] the doc-comment rules consume.
//
// Source is parsed with tree-sitter. [Parse] reports, in source order:
//
//   - function and generator declarations, including exported ones;
//   - function expressions and arrow functions bound by a variable
//     declarator, an assignment, an object property or a class field;
//   - class and object methods, including getters and setters;
//   - default-exported anonymous functions.
//
// Functions passed as arguments or invoked immediately are not reported.
//
// # Doc-Comments
//
// A function's doc-comment is the "/** ... */" comment that directly precedes
// the statement declaring it: the declaration itself, or the enclosing
// export statement, variable declaration, expression statement, object
// property, class field or method definition.
//
// # Signatures
//
// Parameters keep their declared names. Rest parameters drop the "..."
// prefix, defaults set [signature.Param.HasDefault] and destructuring
// patterns are named by their source text. Access follows
// [signature.ClassifyName]. A function is an export assignment when it is
// the right-hand side of an assignment to module.exports, a property of
// module.exports, or a property of exports.
//
// # Returns
//
// Reachability is computed by walking the function body's statements.
// Nested functions are not entered. A block stops at the first statement
// that cannot complete; if/else, switch with default, try/catch/finally and
// throw are followed, and loop bodies are treated as possibly skipped. A
// bare "return;" counts as a path that returns no value. Arrow functions with
// an expression body always return.
//
// Returned value kinds come from literals, templates, object and array
// literals, functions, regular expressions, "new" expressions, and the
// operators of unary, binary, logical and conditional expressions. Any other
// expression contributes [signature.KindUnknown].
package jsfunc
