package main

import (
	"github.com/BurntSushi/toml"

	"github.com/dekarrin/shiner"
)

// fileConfig is the on-disk shape of a grammar description file: one
// [[rule]] per lexer rule and one [[production]] per grammar production,
// matching the schema §2's Configuration note describes.
type fileConfig struct {
	Start      string            `toml:"start"`
	Rules      []ruleConfig      `toml:"rule"`
	Productions []productionConfig `toml:"production"`
}

type ruleConfig struct {
	Name     string `toml:"name"`
	Regex    string `toml:"regex"`
	Literal  string `toml:"literal"`
	Priority int    `toml:"priority"`
}

type productionConfig struct {
	LHS string   `toml:"lhs"`
	RHS []string `toml:"rhs"`
}

func loadConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// toFrontendInputs converts the raw file config into the RuleSpec/GrammarSpec
// pair shiner.NewFrontend expects, inferring the set of non-terminals from
// the left-hand sides of the declared productions.
func (c *fileConfig) toFrontendInputs() ([]shiner.RuleSpec, shiner.GrammarSpec) {
	rules := make([]shiner.RuleSpec, len(c.Rules))
	for i, r := range c.Rules {
		rules[i] = shiner.RuleSpec{Class: r.Name, Regex: r.Regex, Literal: r.Literal, Priority: r.Priority}
	}

	seen := map[string]bool{}
	var nonTerminals []string
	for _, p := range c.Productions {
		if !seen[p.LHS] {
			seen[p.LHS] = true
			nonTerminals = append(nonTerminals, p.LHS)
		}
	}

	prods := make([]shiner.ProductionSpec, len(c.Productions))
	for i, p := range c.Productions {
		prods[i] = shiner.ProductionSpec{Left: p.LHS, Right: p.RHS}
	}

	return rules, shiner.GrammarSpec{NonTerminals: nonTerminals, Productions: prods, Start: c.Start}
}
