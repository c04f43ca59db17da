package ast

type (
	ProgramID uint32
	ExprID    uint32
	PayloadID uint32
)

const (
	NoProgramID ProgramID = 0
	NoExprID    ExprID    = 0
	NoPayloadID PayloadID = 0
)

func (id ProgramID) IsValid() bool { return id != NoProgramID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
