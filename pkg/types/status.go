package types

// StatusKind 定义状态效果类型
type StatusKind int

const (
	// StatusNone 无状态效果
	StatusNone StatusKind = iota
	StatusPoison
	StatusBurn
	StatusFreeze
	StatusWeb
	StatusStun
)

// String 返回状态效果名称
func (s StatusKind) String() string {
	switch s {
	case StatusPoison:
		return "poison"
	case StatusBurn:
		return "burn"
	case StatusFreeze:
		return "freeze"
	case StatusWeb:
		return "web"
	case StatusStun:
		return "stun"
	default:
		return "none"
	}
}
