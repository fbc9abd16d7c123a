package handlers

// SingleRequest is the payload for POST /api/v1/kelly/single.
type SingleRequest struct {
	Returns       []float64 `json:"returns"`
	Probabilities []float64 `json:"probabilities"`
}

// DoubleRequest is the payload for POST /api/v1/kelly/double.
type DoubleRequest struct {
	Returns1       []float64 `json:"returns1"`
	Returns2       []float64 `json:"returns2"`
	Probabilities1 []float64 `json:"probabilities1"`
	Probabilities2 []float64 `json:"probabilities2"`
}

// FractionResponse renders one solved fraction: the numeric value when
// bounded, the bound tag, and the legacy ±1e6 sentinel for consumers that
// still compare magic numbers.
type FractionResponse struct {
	Fraction float64 `json:"fraction"`
	Bound    string  `json:"bound"`
	Sentinel float64 `json:"sentinel"`
}

// DoubleResponse renders the joint solution of two independent bets.
type DoubleResponse struct {
	Bet1 FractionResponse `json:"bet1"`
	Bet2 FractionResponse `json:"bet2"`
}

// SimulateRequest is the payload for POST /api/v1/simulate. Rounds,
// InitialBankroll and Seed are optional; zero values take the service
// defaults.
type SimulateRequest struct {
	Returns         []float64 `json:"returns"`
	Probabilities   []float64 `json:"probabilities"`
	Fraction        float64   `json:"fraction"`
	Rounds          int       `json:"rounds,omitempty"`
	InitialBankroll float64   `json:"initial_bankroll,omitempty"`
	Seed            int64     `json:"seed,omitempty"`
}

// SimulateResponse carries the bankroll path (index 0 = initial bankroll)
// and its final value.
type SimulateResponse struct {
	Path  []float64 `json:"path"`
	Final float64   `json:"final"`
}
