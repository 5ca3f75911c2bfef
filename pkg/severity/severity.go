// Package severity classifies an incident from its system impact and user scope.
package severity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrOutOfRange is returned for an impact or scope outside 1..4.
var ErrOutOfRange = errors.New("value out of range")

// Impact rates the damage to the system, 1 (cosmetic) to 4 (data loss).
type Impact int

const (
	ImpactCosmetic Impact = iota + 1
	ImpactMinor
	ImpactMajor
	ImpactDataLoss
)

// Scope rates how many users are affected, 1 (single) to 4 (global).
type Scope int

const (
	ScopeSingle Scope = iota + 1
	ScopeTeam
	ScopeRegion
	ScopeGlobal
)

var impactNames = [...]string{"Cosmetic", "Minor", "Major", "Data Loss"}
var scopeNames = [...]string{"Single", "Team", "Region", "Global"}

func (i Impact) String() string {
	if i < ImpactCosmetic || i > ImpactDataLoss {
		return fmt.Sprintf("Impact(%d)", int(i))
	}
	return impactNames[i-1]
}

func (s Scope) String() string {
	if s < ScopeSingle || s > ScopeGlobal {
		return fmt.Sprintf("Scope(%d)", int(s))
	}
	return scopeNames[s-1]
}

// Level is a severity classification, SEV-1 (worst) to SEV-5.
type Level struct {
	Code        string `json:"code" yaml:"code"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	// SLA is the expected time to first response.
	SLA string `json:"sla" yaml:"sla"`
	// Channel is where the incident is escalated.
	Channel string `json:"channel" yaml:"channel"`
}

// Rank returns the numeric part of the code: 1 for SEV-1.
func (l Level) Rank() int {
	n, _ := strconv.Atoi(strings.TrimPrefix(l.Code, "SEV-"))
	return n
}

var levels = [...]Level{
	{Code: "SEV-1", Title: "Critical", Description: "Immediate executive response required. Core business halted.", SLA: "15 min", Channel: "#incident-crit"},
	{Code: "SEV-2", Title: "High", Description: "Urgent response. Major functionality impaired.", SLA: "1 hour", Channel: "#dev-ops"},
	{Code: "SEV-3", Title: "Medium", Description: "Prioritized response. Minor degradation or workaround available.", SLA: "24 hours", Channel: "#dev-ops"},
	{Code: "SEV-4", Title: "Low", Description: "Planned response. Cosmetic issues or internal tools.", SLA: "24 hours", Channel: "#dev-ops"},
	{Code: "SEV-5", Title: "Info", Description: "No immediate impact. Tracking only.", SLA: "24 hours", Channel: "#dev-ops"},
}

// matrix[impact-1][scope-1] is the SEV rank.
var matrix = [4][4]int{
	{5, 4, 4, 3},
	{4, 3, 3, 2},
	{3, 2, 2, 1},
	{2, 1, 1, 1},
}

// Levels returns every level from SEV-1 to SEV-5.
func Levels() []Level {
	return append([]Level(nil), levels[:]...)
}

// Classify returns the level for an impact and a scope.
func Classify(impact Impact, scope Scope) (Level, error) {
	if impact < ImpactCosmetic || impact > ImpactDataLoss {
		return Level{}, fmt.Errorf("%w: impact %d (want 1-4)", ErrOutOfRange, int(impact))
	}
	if scope < ScopeSingle || scope > ScopeGlobal {
		return Level{}, fmt.Errorf("%w: scope %d (want 1-4)", ErrOutOfRange, int(scope))
	}
	return levels[matrix[impact-1][scope-1]-1], nil
}

// Matrix returns the SEV code of every cell, indexed [impact-1][scope-1].
func Matrix() [4][4]string {
	var out [4][4]string
	for i, row := range matrix {
		for j, rank := range row {
			out[i][j] = levels[rank-1].Code
		}
	}
	return out
}

// ParseImpact accepts a number (1-4) or a case-insensitive name such as "data loss".
func ParseImpact(s string) (Impact, error) {
	n, err := parseAxis(s, impactNames[:])
	if err != nil {
		return 0, fmt.Errorf("impact: %w", err)
	}
	return Impact(n), nil
}

// ParseScope accepts a number (1-4) or a case-insensitive name such as "region".
func ParseScope(s string) (Scope, error) {
	n, err := parseAxis(s, scopeNames[:])
	if err != nil {
		return 0, fmt.Errorf("scope: %w", err)
	}
	return Scope(n), nil
}

func parseAxis(s string, names []string) (int, error) {
	clean := strings.TrimSpace(s)
	if n, err := strconv.Atoi(clean); err == nil {
		if n < 1 || n > len(names) {
			return 0, fmt.Errorf("%w: %d (want 1-%d)", ErrOutOfRange, n, len(names))
		}
		return n, nil
	}
	normalized := strings.ReplaceAll(clean, "-", " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")
	for i, name := range names {
		if strings.EqualFold(name, normalized) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown value %q", ErrOutOfRange, s)
}
