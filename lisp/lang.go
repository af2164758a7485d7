package lisp

// VarArgSymbol is the symbol that indicates a variadic function argument in a
// function's list of formal arguments.
const VarArgSymbol = "&"
