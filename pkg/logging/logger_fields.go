package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Field helpers for the sampling domain

func Component(name string) Field {
	return String("component", name)
}

func RunID(id string) Field {
	return String("run_id", id)
}

func Strategy(name string) Field {
	return String("strategy", name)
}

func NodeID(id string) Field {
	return String("node_id", id)
}

func SeedCount(n int) Field {
	return Int("seed_count", n)
}

func FrontierIndex(i int) Field {
	return Int("frontier", i)
}

func NeighborCount(n int) Field {
	return Int("neighbors", n)
}

func Iterations(n int) Field {
	return Int("iterations", n)
}

func NodesExpanded(n int) Field {
	return Int("nodes_expanded", n)
}

func EdgesTraversed(n int) Field {
	return Int("edges_traversed", n)
}

func PathCount(n int) Field {
	return Int("paths", n)
}

func PathLength(n int) Field {
	return Int("path_length", n)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
