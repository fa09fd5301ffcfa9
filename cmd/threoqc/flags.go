package main

import (
	"sort"
	"strings"

	"github.com/fermlab/threoqc/replicate"
)

// map[sample key] => set of qc flags
type SampleFlags map[replicate.Key]flagSet

func (s SampleFlags) AddFlag(sample replicate.Key, flag string) {
	samp, exists := s[sample]
	if !exists {
		samp = make(flagSet)
	}
	samp[flag] = struct{}{}
	s[sample] = samp
}

type flagSet map[string]struct{}

func (fs flagSet) String() string {
	if len(fs) == 0 {
		return ""
	}

	sb := make([]string, 0, len(fs))
	for v := range fs {
		sb = append(sb, v)
	}

	sort.Strings(sb)

	return strings.Join(sb, "|")
}
