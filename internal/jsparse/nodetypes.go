// Copyright 2026 wtlin1228. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package jsparse

// Tree-sitter node types used by the converter.
//
// Reference: https://github.com/tree-sitter/tree-sitter-javascript
// and https://github.com/tree-sitter/tree-sitter-typescript
const (
	// Trivia
	nodeComment        = "comment"
	nodeHashBangLine   = "hash_bang_line"
	nodeEmptyStatement = "empty_statement"

	// Modules
	nodeImportStatement = "import_statement"
	nodeImportClause    = "import_clause"
	nodeNamespaceImport = "namespace_import"
	nodeNamedImports    = "named_imports"
	nodeImportSpecifier = "import_specifier"
	nodeExportStatement = "export_statement"

	// Declarations
	nodeLexicalDeclaration  = "lexical_declaration"
	nodeVariableDeclaration = "variable_declaration"
	nodeVariableDeclarator  = "variable_declarator"
	nodeFunctionDeclaration = "function_declaration"
	nodeGeneratorFuncDecl   = "generator_function_declaration"
	nodeClassDeclaration    = "class_declaration"
	nodeAbstractClassDecl   = "abstract_class_declaration"

	// Functions and classes
	nodeFunction           = "function" // anonymous function expression in older grammars
	nodeFunctionExpression = "function_expression"
	nodeGeneratorFunction  = "generator_function"
	nodeArrowFunction      = "arrow_function"
	nodeClass              = "class"
	nodeClassHeritage      = "class_heritage"
	nodeExtendsClause      = "extends_clause"
	nodeImplementsClause   = "implements_clause"
	nodeMethodDefinition   = "method_definition"
	nodeFieldDefinition    = "field_definition"
	nodePublicFieldDef     = "public_field_definition"
	nodeClassStaticBlock   = "class_static_block"
	nodeDecorator          = "decorator"

	// Statements
	nodeStatementBlock      = "statement_block"
	nodeExpressionStatement = "expression_statement"
	nodeCatchClause         = "catch_clause"
	nodeForInStatement      = "for_in_statement"
	nodeSwitchBody          = "switch_body"
	nodeSwitchCase          = "switch_case"
	nodeSwitchDefault       = "switch_default"

	// Names
	nodeIdentifier              = "identifier"
	nodeTypeIdentifier          = "type_identifier"
	nodePropertyIdentifier      = "property_identifier"
	nodePrivatePropertyIdent    = "private_property_identifier"
	nodeStatementIdentifier     = "statement_identifier"
	nodeShorthandPropertyIdent  = "shorthand_property_identifier"
	nodeShorthandPropertyIdentP = "shorthand_property_identifier_pattern"

	// Literals
	nodeString               = "string"
	nodeObject               = "object"
	nodeArray                = "array"
	nodePair                 = "pair"
	nodeSpreadElement        = "spread_element"
	nodeComputedPropertyName = "computed_property_name"
	nodeJSXText              = "jsx_text"

	// Expressions
	nodeMemberExpression    = "member_expression"
	nodeSubscriptExpression = "subscript_expression"
	nodeCallExpression      = "call_expression"
	nodeArguments           = "arguments"
	nodeParenthesizedExpr   = "parenthesized_expression"
	nodeOptionalChain       = "optional_chain"
	nodeJSXExpression       = "jsx_expression"

	// Patterns
	nodeObjectPattern           = "object_pattern"
	nodeArrayPattern            = "array_pattern"
	nodePairPattern             = "pair_pattern"
	nodeAssignmentPattern       = "assignment_pattern"
	nodeObjectAssignmentPattern = "object_assignment_pattern"
	nodeRestPattern             = "rest_pattern"
	nodeRequiredParameter       = "required_parameter"
	nodeOptionalParameter       = "optional_parameter"

	// TypeScript expressions erased at runtime
	nodeAsExpression        = "as_expression"
	nodeSatisfiesExpression = "satisfies_expression"
	nodeNonNullExpression   = "non_null_expression"
	nodeTypeAssertion       = "type_assertion"

	// Keywords
	nodeDefault = "default"
	nodeConst   = "const"
	nodeLet     = "let"
)

// typeOnly lists TypeScript nodes without runtime semantics. They are dropped.
var typeOnly = map[string]struct{}{
	"abstract_method_signature": {},
	"accessibility_modifier":    {},
	"ambient_declaration":       {},
	"function_signature":        {},
	"implements_clause":         {},
	"index_signature":           {},
	"interface_declaration":     {},
	"method_signature":          {},
	"omitting_type_annotation":  {},
	"opting_type_annotation":    {},
	"override_modifier":         {},
	"type_alias_declaration":    {},
	"type_annotation":           {},
	"type_arguments":            {},
	"type_parameters":           {},
	"type_predicate_annotation": {},
}

// nameOnly lists name nodes that carry no binding and are skipped in generic conversion.
var nameOnly = map[string]struct{}{
	nodePropertyIdentifier:   {},
	nodePrivatePropertyIdent: {},
	nodeStatementIdentifier:  {},
	nodeJSXText:              {},
	nodeComment:              {},
	nodeHashBangLine:         {},
}
