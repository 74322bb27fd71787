package game

// Status 玩家状态
type Status int

const (
	StatusActive Status = iota
	StatusBusted
	StatusStood
)

var statusNames = map[Status]string{
	StatusActive: "active",
	StatusBusted: "busted",
	StatusStood:  "stood",
}

func (s Status) String() string {
	return statusNames[s]
}

// Terminal reports whether no further transition can leave this status.
func (s Status) Terminal() bool {
	return s == StatusBusted || s == StatusStood
}
