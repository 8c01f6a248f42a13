/*
Package tailcss implements a utility-class CSS compiler. It reads class names
such as "p-4", "md:hover:bg-blue-500" or "flex[col jc-center]" and generates
the CSS rules that implement them.

This package ties together the stages that live in subpackages and provides
the printer used to write the resulting rules out as CSS text.


Basics

Generation happens per class token. The grouped-syntax expander first
rewrites shorthand such as "flex[col jc-center]" or "bg:black" into canonical
classes. The tokenizer then splits each class into its variant chain, its
utility and an optional bracketed arbitrary value. A resolver maps the
utility to declarations and the composer builds the selector and at-rule
wrappers from the variant chain.

Classes that cannot be generated are never fatal. Markup routinely contains
class names that were never meant to be utilities, so those are collected
in Result.Unknown and Result.Skipped and the build goes on.


Ordering

Rules must be emitted so that variants override the plain utility. Every
variant in the registry carries an order and a rule is sorted by the
largest order in its chain, then by the sum, then by the position of the
first class that produced it. Rules that share an at-rule chain and selector
are merged.

Generate splits the class list into contiguous ranges, one per worker, and
merges the partial rule sets in range order so the output is the same for
any number of workers.


Printing

A Printer writes rules as CSS. An empty Indent produces compact output;
consecutive rules that share at-rules are written inside one block either
way. Minify runs printed CSS through esbuild for the smallest output.


*/
package tailcss
