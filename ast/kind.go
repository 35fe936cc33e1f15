// File: kind.go
// Title: Grammar Symbol Kinds
// Description: Enumerates the kind tag carried by every parse tree node,
//              one constant per grammar symbol, with the name table used
//              by the dump printer.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial kind enumeration

package ast

import "fmt"

// Kind identifies the grammar symbol a node represents.
type Kind int

// Grammar symbol kinds. Interior kinds come first (structural
// productions), then leaf kinds (literal fragments, keywords, and
// punctuation). The order is stable because the name table indexes by
// value.
const (
	Root Kind = iota
	Prog
	ModDecl
	Import
	Line
	Expr
	Subexpr
	ChrLit
	StrLit
	FnDecl
	Parened
	Return
	Case
	IfElse
	Try
	While
	For
	Lambda
	TupleLit
	ListLit
	ListComp
	DictLit
	DictComp
	SetLit
	SetComp
	QualIdent
	NamespacedIdent
	Ident
	MemberIdent
	ScopedIdent
	TypeIdent
	NumLit
	Op
	Infixed
	Var
	Assign
	Pattern
	StrChr
	Param
	Generator
	RealLit
	IntLit
	AbsInt
	AbsReal
	ChrChr
	DictEntry
	CaseBranch
	Equals
	SingleQuote
	DoubleQuote
	ModuleKeyword
	ExposingKeyword
	HidingKeyword
	ImportKeyword
	AsKeyword
	FnKeyword
	CaseKeyword
	IfKeyword
	ElseKeyword
	TryKeyword
	CatchKeyword
	WhileKeyword
	ForKeyword
	InKeyword
	VarKeyword
	NanKeyword
	InfinityKeyword
	ReturnKeyword
	Dot
	Comma
	Colon
	Underscore
	LArrow
	RArrow
	FatRArrow
	LParen
	RParen
	LSq
	RSq
	LCurly
	RCurly
	Backslash
	DoubleColon
	Minus
	Bar
	Backtick
)

// kindNames maps kind values to the names printed by the dump.
var kindNames = [...]string{
	Root:            "Root",
	Prog:            "Prog",
	ModDecl:         "ModDecl",
	Import:          "Import",
	Line:            "Line",
	Expr:            "Expr",
	Subexpr:         "Subexpr",
	ChrLit:          "ChrLit",
	StrLit:          "StrLit",
	FnDecl:          "FnDecl",
	Parened:         "Parened",
	Return:          "Return",
	Case:            "Case",
	IfElse:          "IfElse",
	Try:             "Try",
	While:           "While",
	For:             "For",
	Lambda:          "Lambda",
	TupleLit:        "TupleLit",
	ListLit:         "ListLit",
	ListComp:        "ListComp",
	DictLit:         "DictLit",
	DictComp:        "DictComp",
	SetLit:          "SetLit",
	SetComp:         "SetComp",
	QualIdent:       "QualIdent",
	NamespacedIdent: "NamespacedIdent",
	Ident:           "Ident",
	MemberIdent:     "MemberIdent",
	ScopedIdent:     "ScopedIdent",
	TypeIdent:       "TypeIdent",
	NumLit:          "NumLit",
	Op:              "Op",
	Infixed:         "Infixed",
	Var:             "Var",
	Assign:          "Assign",
	Pattern:         "Pattern",
	StrChr:          "StrChr",
	Param:           "Param",
	Generator:       "Generator",
	RealLit:         "RealLit",
	IntLit:          "IntLit",
	AbsInt:          "AbsInt",
	AbsReal:         "AbsReal",
	ChrChr:          "ChrChr",
	DictEntry:       "DictEntry",
	CaseBranch:      "CaseBranch",
	Equals:          "Equals",
	SingleQuote:     "SingleQuote",
	DoubleQuote:     "DoubleQuote",
	ModuleKeyword:   "ModuleKeyword",
	ExposingKeyword: "ExposingKeyword",
	HidingKeyword:   "HidingKeyword",
	ImportKeyword:   "ImportKeyword",
	AsKeyword:       "AsKeyword",
	FnKeyword:       "FnKeyword",
	CaseKeyword:     "CaseKeyword",
	IfKeyword:       "IfKeyword",
	ElseKeyword:     "ElseKeyword",
	TryKeyword:      "TryKeyword",
	CatchKeyword:    "CatchKeyword",
	WhileKeyword:    "WhileKeyword",
	ForKeyword:      "ForKeyword",
	InKeyword:       "InKeyword",
	VarKeyword:      "VarKeyword",
	NanKeyword:      "NanKeyword",
	InfinityKeyword: "InfinityKeyword",
	ReturnKeyword:   "ReturnKeyword",
	Dot:             "Dot",
	Comma:           "Comma",
	Colon:           "Colon",
	Underscore:      "Underscore",
	LArrow:          "LArrow",
	RArrow:          "RArrow",
	FatRArrow:       "FatRArrow",
	LParen:          "LParen",
	RParen:          "RParen",
	LSq:             "LSqBracket",
	RSq:             "RSqBracket",
	LCurly:          "LCurlyBracket",
	RCurly:          "RCurlyBracket",
	Backslash:       "Backslash",
	DoubleColon:     "DoubleColon",
	Minus:           "Minus",
	Bar:             "Bar",
	Backtick:        "Backtick",
}

// String returns the grammar symbol name, e.g. "ModDecl".
func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsValid returns true if k is one of the defined grammar symbol kinds.
func (k Kind) IsValid() bool {
	return k >= Root && int(k) < len(kindNames)
}
