// Package epidemic is an in-memory playground for agent-based epidemic
// modelling — a discrete population of individuals, a daily SIR update
// rule, and a time-series log of how an outbreak unfolds.
//
// 🚀 What is epidemic?
//
//	A small, deterministic-when-seeded library that brings together:
//		• Population state: N agents, each with a health status and two
//		  fixed personal traits (immune power & contagion power)
//		• A sequential daily tick: threshold-driven recovery plus
//		  stochastic person-to-person transmission via random contacts
//		• A Time-Series Log: per-day Susceptible/Infected/Recovered counts
//
// ✨ Why choose epidemic?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every random draw comes from one injectable *rand.Rand
//   - Pure Go – no cgo, no hidden deps
//   - Honest semantics – sequential (asynchronous) intra-day updates are
//     a documented design property, not an accident
//
// Under the hood, everything is organized under two subpackages:
//
//	population/ — the Agent model and Population construction
//	sir/        — the simulation engine and the Time-Series Log
//
// Quick ASCII example:
//
//	Susceptible ──(contact roll)──▶ Infected ──(day threshold)──▶ Recovered
//
//	the three states are mutually exclusive and strictly time-ordered;
//	Recovered is absorbing.
//
// Next up: contact-network topologies, exposed (E) compartments, and
// parameter-sweep helpers. Dive into examples/ for runnable demos.
//
//	go get github.com/katalvlaran/epidemic/sir
package epidemic
