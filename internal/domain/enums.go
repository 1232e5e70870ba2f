package domain

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles       StrategyTier = iota // sole candidates
	StrategyHiddenSingles                     // unique candidates in a row/col/box
)
