package rules

import (
	"fmt"

	"go.jacobcolvin.com/jsdoc/signature"
)

// Finding is one rule violation.
type Finding struct {
	RuleID  string             `json:"ruleId"   yaml:"ruleId"`
	Message string             `json:"message"  yaml:"message"`
	Pos     signature.Position `json:"location" yaml:"location"`
}

// String formats the finding as "line:column: rule: message".
func (f Finding) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", f.Pos.Line, f.Pos.Column, f.RuleID, f.Message)
}

func findingf(pos signature.Position, format string, args ...any) Finding {
	return Finding{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
