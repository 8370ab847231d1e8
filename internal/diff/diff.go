package diff

// Op classifies a single edit operation.
type Op int

const (
	// OpEqual is a line present in both sequences.
	OpEqual Op = iota
	// OpRemove is a line present only in the old sequence.
	OpRemove
	// OpAdd is a line present only in the new sequence.
	OpAdd
)

// String returns the string representation of an op.
func (op Op) String() string {
	switch op {
	case OpEqual:
		return "equal"
	case OpRemove:
		return "remove"
	case OpAdd:
		return "add"
	default:
		return "unknown"
	}
}

// Prefix returns the unified-diff prefix character for this op.
func (op Op) Prefix() string {
	switch op {
	case OpRemove:
		return "-"
	case OpAdd:
		return "+"
	default:
		return " "
	}
}

// Edit is one operation of an edit script.
type Edit struct {
	Op   Op
	Text string
}

// Compute returns the edit script that transforms old into new while
// retaining a longest common subsequence. Equal and Remove ops consume a
// line from old; Equal and Add ops consume a line from new. Lines are
// compared by exact string equality.
//
// When the LCS backtrack scores tie, Add is preferred over Remove. After
// the script is reversed into old-to-new order this places removals
// before the additions that replace them, and it makes the output
// deterministic. Formatting relies on that exact rule.
func Compute(old, new []string) []Edit {
	m, n := len(old), len(new)

	// LCS length table, table[i][j] = LCS(old[:i], new[:j]).
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if old[i-1] == new[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}

	// Backtrack from (m, n) to (0, 0).
	script := make([]Edit, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && old[i-1] == new[j-1]:
			script = append(script, Edit{OpEqual, old[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || table[i][j-1] >= table[i-1][j]):
			script = append(script, Edit{OpAdd, new[j-1]})
			j--
		default:
			script = append(script, Edit{OpRemove, old[i-1]})
			i--
		}
	}

	// Reverse into old-to-new traversal order.
	for a, b := 0, len(script)-1; a < b; a, b = a+1, b-1 {
		script[a], script[b] = script[b], script[a]
	}

	return script
}

// Stats counts the additions and removals in an edit script.
func Stats(script []Edit) (additions, removals int) {
	for _, e := range script {
		switch e.Op {
		case OpAdd:
			additions++
		case OpRemove:
			removals++
		}
	}
	return
}
