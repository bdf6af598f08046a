package syntax

import (
	"fmt"
)

/*
program        → declaration* EOF

declaration    → classDecl
               | varDecl
               | statement

classDecl      → "class" IDENTIFIER ( "<" IDENTIFIER )? "{" method* "}"
method         → IDENTIFIER "(" parameters? ")" block
parameters     → IDENTIFIER ( "," IDENTIFIER )*

varDecl        → "var" IDENTIFIER ( "=" expression )? ";"

statement      → exprStmt
               | printStmt
               | returnStmt
               | block

exprStmt       → expression ";"
printStmt      → "print" expression ";"
returnStmt     → "return" expression? ";"
block          → "{" declaration* "}"

expression     → assignment
assignment     → ( call "." )? IDENTIFIER "=" assignment
               | term
term           → call ( "+" call )*
call           → primary ( "(" arguments? ")" | "." IDENTIFIER )*
arguments      → expression ( "," expression )*
primary        → STRING | NUMBER | "true" | "false" | "nil" | "this"
               | "super" "." IDENTIFIER "(" arguments? ")"
               | IDENTIFIER | "(" expression ")"
*/

type Parser struct {
	Tokens   []Token
	Current  int
	parseErr error
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		Tokens:  tokens,
		Current: 0,
	}
}

func (p *Parser) Parse() []Stmt {
	stmts := make([]Stmt, 0)
	for !p.isEnd() {
		stmt, err := p.parseDeclaration()
		if err != nil {
			// record the last error
			fmt.Printf("parse Err:%s\n", err.Error())
			p.parseErr = err
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

func (p *Parser) parseDeclaration() (Stmt, error) {
	if p.match(TOKEN_CLASS) {
		return p.parseClassDecl()
	}
	if p.match(TOKEN_VAR) {
		return p.parseVarDecl()
	}
	return p.parseStmt()
}

func (p *Parser) parseClassDecl() (Stmt, error) {
	if cErr := p.consume(TOKEN_IDENTIFIER, "expect class name"); cErr != nil {
		return nil, cErr
	}
	name := p.previous()

	var parent Token
	if p.match(TOKEN_LESS) {
		if cErr := p.consume(TOKEN_IDENTIFIER, "expect parent class name after '<'"); cErr != nil {
			return nil, cErr
		}
		parent = p.previous()
	}

	if cErr := p.consume(TOKEN_LEFT_BRACE, "expect '{' before class body"); cErr != nil {
		return nil, cErr
	}
	methods := make([]*Method, 0)
	for !p.check(TOKEN_RIGHT_BRACE) && !p.isEnd() {
		method, err := p.parseMethod()
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	if cErr := p.consume(TOKEN_RIGHT_BRACE, "expect '}' after class body"); cErr != nil {
		return nil, cErr
	}
	return NewClass(name, parent, methods), nil
}

func (p *Parser) parseMethod() (*Method, error) {
	if cErr := p.consume(TOKEN_IDENTIFIER, "expect method name"); cErr != nil {
		return nil, cErr
	}
	name := p.previous()
	if cErr := p.consume(TOKEN_LEFT_PAREN, "expect '(' after method name"); cErr != nil {
		return nil, cErr
	}
	params := make([]Token, 0)
	if !p.check(TOKEN_RIGHT_PAREN) {
		for {
			if cErr := p.consume(TOKEN_IDENTIFIER, "expect parameter name"); cErr != nil {
				return nil, cErr
			}
			params = append(params, p.previous())
			if !p.match(TOKEN_COMMA) {
				break
			}
		}
	}
	if cErr := p.consume(TOKEN_RIGHT_PAREN, "expect ')' after parameters"); cErr != nil {
		return nil, cErr
	}
	if cErr := p.consume(TOKEN_LEFT_BRACE, "expect '{' before method body"); cErr != nil {
		return nil, cErr
	}
	body, err := p.parseBlockStmts()
	if err != nil {
		return nil, err
	}
	return NewMethod(name, params, body), nil
}

func (p *Parser) parseVarDecl() (Stmt, error) {
	if cErr := p.consume(TOKEN_IDENTIFIER, "expect variable name"); cErr != nil {
		return nil, cErr
	}
	name := p.previous()
	var initializer Expr
	if p.match(TOKEN_EQUAL) {
		var pErr error
		initializer, pErr = p.parseExpr()
		if pErr != nil {
			return nil, pErr
		}
	}

	if cErr := p.consume(TOKEN_SEMICOLON, "expect ';' after variable declaration"); cErr != nil {
		return nil, cErr
	}
	return NewVar(name, initializer), nil
}

func (p *Parser) parseStmt() (Stmt, error) {
	if p.match(TOKEN_PRINT) {
		return p.parsePrintStmt()
	}
	if p.match(TOKEN_RETURN) {
		return p.parseReturnStmt()
	}
	if p.match(TOKEN_LEFT_BRACE) {
		stmts, err := p.parseBlockStmts()
		if err != nil {
			return nil, err
		}
		return NewBlock(stmts), nil
	}
	return p.parseExprStmt()
}

func (p *Parser) parseBlockStmts() ([]Stmt, error) {
	stmts := make([]Stmt, 0)
	for !p.check(TOKEN_RIGHT_BRACE) && !p.isEnd() {
		stmt, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if cErr := p.consume(TOKEN_RIGHT_BRACE, "expect '}' after block"); cErr != nil {
		return nil, cErr
	}
	return stmts, nil
}

func (p *Parser) parsePrintStmt() (Stmt, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if cErr := p.consume(TOKEN_SEMICOLON, "expect ';' after value"); cErr != nil {
		return nil, cErr
	}
	return NewPrint(expr), nil
}

func (p *Parser) parseReturnStmt() (Stmt, error) {
	keyword := p.previous()
	var value Expr
	if !p.check(TOKEN_SEMICOLON) {
		var err error
		value, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if cErr := p.consume(TOKEN_SEMICOLON, "expect ';' after return value"); cErr != nil {
		return nil, cErr
	}
	return NewReturn(keyword, value), nil
}

func (p *Parser) parseExprStmt() (Stmt, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if cErr := p.consume(TOKEN_SEMICOLON, "expect ';' after value"); cErr != nil {
		return nil, cErr
	}
	return NewExpression(expr), nil
}

func (p *Parser) parseExpr() (Expr, error) {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (Expr, error) {
	expr, pErr := p.parseTerm()
	if pErr != nil {
		return nil, pErr
	}

	if p.match(TOKEN_EQUAL) {
		equalToken := p.previous()
		value, pErr := p.parseAssignment()
		if pErr != nil {
			return nil, pErr
		}

		if variable, ok := expr.(*Variable); ok {
			return NewAssign(variable.Name, value), nil
		}
		if get, ok := expr.(*Get); ok {
			return NewSet(get.Object, get.Name, value), nil
		}

		return nil, p.error(equalToken, "Invalid assignment target.")
	}
	return expr, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	expr, err := p.parseCall()
	if err != nil {
		return nil, err
	}

	for p.match(TOKEN_PLUS) {
		op := p.previous()
		right, err := p.parseCall()
		if err != nil {
			return nil, err
		}
		expr = NewBinary(expr, op, right)
	}

	return expr, nil
}

func (p *Parser) parseCall() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		if p.match(TOKEN_LEFT_PAREN) {
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		} else if p.match(TOKEN_DOT) {
			if cErr := p.consume(TOKEN_IDENTIFIER, "expect property name after '.'"); cErr != nil {
				return nil, cErr
			}
			expr = NewGet(expr, p.previous())
		} else {
			break
		}
	}

	return expr, nil
}

func (p *Parser) finishCall(callee Expr) (Expr, error) {
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	return NewCall(callee, p.previous(), args), nil
}

// parseArguments consumes up to and including the closing ')'.
func (p *Parser) parseArguments() ([]Expr, error) {
	args := make([]Expr, 0)
	if !p.check(TOKEN_RIGHT_PAREN) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(TOKEN_COMMA) {
				break
			}
		}
	}
	if cErr := p.consume(TOKEN_RIGHT_PAREN, "expect ')' after arguments"); cErr != nil {
		return nil, cErr
	}
	return args, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	if p.match(TOKEN_NUMBER) {
		return &Literal{Value: p.previous().Literal}, nil
	}
	if p.match(TOKEN_STRING) {
		return &Literal{Value: p.previous().Literal}, nil
	}
	if p.match(TOKEN_TRUE) {
		return &Literal{Value: true}, nil
	}
	if p.match(TOKEN_FALSE) {
		return &Literal{Value: false}, nil
	}
	if p.match(TOKEN_NIL) {
		return &Literal{Value: nil}, nil
	}
	if p.match(TOKEN_THIS) {
		return NewThis(p.previous()), nil
	}
	if p.match(TOKEN_SUPER) {
		return p.parseSuper()
	}
	if p.match(TOKEN_IDENTIFIER) {
		return NewVariable(p.previous()), nil
	}
	if p.match(TOKEN_LEFT_PAREN) {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if cErr := p.consume(TOKEN_RIGHT_PAREN, "expect ')' after expression"); cErr != nil {
			return nil, cErr
		}
		return NewGrouping(expr), nil
	}
	return nil, p.error(p.peek(), "expect expression")
}

// super is only valid as a complete delegated call: super.method(args)
func (p *Parser) parseSuper() (Expr, error) {
	keyword := p.previous()
	if cErr := p.consume(TOKEN_DOT, "expect '.' after 'super'"); cErr != nil {
		return nil, cErr
	}
	if cErr := p.consume(TOKEN_IDENTIFIER, "expect parent method name"); cErr != nil {
		return nil, cErr
	}
	method := p.previous()
	if cErr := p.consume(TOKEN_LEFT_PAREN, "expect '(' after parent method name"); cErr != nil {
		return nil, cErr
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	return NewSuper(keyword, method, args), nil
}

func (p *Parser) match(tokenTypes ...TokenType) bool {
	for _, type_ := range tokenTypes {
		if p.check(type_) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(tokenType TokenType) bool {
	if p.isEnd() {
		return false
	}
	return p.peek().TokenType == tokenType
}

func (p *Parser) isEnd() bool {
	return p.peek().TokenType == TOKEN_EOF
}

func (p *Parser) peek() Token {
	return p.Tokens[p.Current]
}

func (p *Parser) advance() Token {
	if !p.isEnd() {
		p.Current++
	}
	return p.Tokens[p.Current-1]
}

func (p *Parser) previous() Token {
	return p.Tokens[p.Current-1]
}

func (p *Parser) consume(tokenType TokenType, message string) error {
	if p.check(tokenType) {
		p.advance()
		return nil
	}
	return p.error(p.peek(), message)
}

func (p *Parser) error(token Token, message string) error {
	return fmt.Errorf("%s, at line %d, got %v instead", message, token.Line, token)
}

// Synchronize the parser when it encounters a syntax error.
//
//	just skip to the next statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isEnd() {
		if p.previous().TokenType == TOKEN_SEMICOLON {
			return
		}
		switch p.peek().TokenType {
		case TOKEN_CLASS, TOKEN_VAR, TOKEN_PRINT, TOKEN_RETURN:
			return
		}
		p.advance()
	}
}

func (p *Parser) GetError() error {
	return p.parseErr
}
