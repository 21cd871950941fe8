package user

import "github.com/heartmarshall/debt-recovery-backend/internal/domain"

// Counts is the number of accounts in total and per role.
type Counts struct {
	Total    int64
	Admins   int64
	Managers int64
	Agents   int64
}

// AgentStats summarizes the investigations assigned to one agent.
type AgentStats struct {
	Email          string
	Name           string
	TotalCases     int
	Collected      int
	Pending        int
	Disputed       int
	Promised       int
	CollectionRate float64
}

// Workload lists AgentStats for a whole agency.
type Workload struct {
	Agents      []AgentStats
	TotalAgents int
}

// AgentDetails is an agent account with its counts.
type AgentDetails struct {
	User  domain.User
	Stats AgentStats
}
