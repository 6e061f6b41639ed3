package sat

// LBool represents a lifted boolean. That is, a truth value that can either
// be True, False, or Free. Free means the symbol has not been committed to
// either value and is still free to take whichever one satisfies the base.
type LBool int8

const (
	Free  LBool = 0
	True  LBool = 1
	False LBool = -1
)

// Opposite returns the opposite of the lifted boolean as follows:
//
//	True -> False
//	False -> True
//	Free -> Free
func (l LBool) Opposite() LBool {
	return -l
}

// Lift returns the LBool corresponding to the given bool.
func Lift(b bool) LBool {
	if b {
		return True
	} else {
		return False
	}
}

func (l LBool) String() string {
	switch l {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "free"
	}
}
