package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"cosmossdk.io/math"
)

// InstructionType tags the settlement instruction variants a handler emits.
type InstructionType string

const (
	// InstructionTransfer moves an amount of a denom between two accounts.
	InstructionTransfer InstructionType = "transfer"
	// InstructionMint mints new supply of a marker denom under an
	// administrator account.
	InstructionMint InstructionType = "mint"
	// InstructionWithdraw releases marker-held supply to a recipient.
	InstructionWithdraw InstructionType = "withdraw"
	// InstructionBurn destroys marker-held supply.
	InstructionBurn InstructionType = "burn"
	// InstructionBindName binds a name record to an address on the name
	// registry.
	InstructionBindName InstructionType = "bind_name"
)

// Instruction is one ordered settlement side effect. Handlers return
// instructions as a plain slice so that ordering requirements stay directly
// observable; nothing is executed by this module itself.
type Instruction struct {
	Type          InstructionType `json:"type"`
	Denom         string          `json:"denom,omitempty"`
	Amount        math.Int        `json:"amount"`
	From          string          `json:"from,omitempty"`
	To            string          `json:"to,omitempty"`
	Administrator string          `json:"administrator,omitempty"`

	// Name-binding fields, set only on InstructionBindName.
	Name       string `json:"name,omitempty"`
	ParentName string `json:"parent_name,omitempty"`
	Address    string `json:"address,omitempty"`
	Restricted bool   `json:"restricted,omitempty"`
}

func NewTransferInstruction(denom string, amount math.Int, from, to string) Instruction {
	return Instruction{
		Type:   InstructionTransfer,
		Denom:  denom,
		Amount: amount,
		From:   from,
		To:     to,
	}
}

func NewMintInstruction(denom string, amount math.Int, administrator string) Instruction {
	return Instruction{
		Type:          InstructionMint,
		Denom:         denom,
		Amount:        amount,
		Administrator: administrator,
	}
}

func NewWithdrawInstruction(denom string, amount math.Int, administrator, to string) Instruction {
	return Instruction{
		Type:          InstructionWithdraw,
		Denom:         denom,
		Amount:        amount,
		Administrator: administrator,
		To:            to,
	}
}

func NewBurnInstruction(denom string, amount math.Int, administrator string) Instruction {
	return Instruction{
		Type:          InstructionBurn,
		Denom:         denom,
		Amount:        amount,
		Administrator: administrator,
	}
}

// NewBindNameInstruction derives a name binding from a fully qualified name.
// The leading segment becomes the restricted bound record and any remaining
// segments form the unrestricted parent record.
func NewBindNameInstruction(name, address string) (Instruction, error) {
	parts := strings.Split(name, ".")
	if parts[0] == "" {
		return Instruction{}, fmt.Errorf("%w: cannot bind to an empty name string [%s]", ErrValidation, name)
	}
	instruction := Instruction{
		Type:       InstructionBindName,
		Name:       parts[0],
		Address:    address,
		Amount:     math.ZeroInt(),
		Restricted: true,
	}
	if len(parts) > 1 {
		instruction.ParentName = strings.Join(parts[1:], ".")
	}
	return instruction, nil
}

// Attribute is one key/value pair of the human readable trail attached to a
// successful operation.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Result carries the ordered instruction list and attribute trail of a
// successful operation. Data is set only by migration and holds the
// serialized post-migration state.
type Result struct {
	Instructions []Instruction   `json:"instructions"`
	Attributes   []Attribute     `json:"attributes"`
	Data         json.RawMessage `json:"data,omitempty"`
}

func NewResult() *Result {
	return &Result{}
}

func (r *Result) AddInstruction(instruction Instruction) *Result {
	r.Instructions = append(r.Instructions, instruction)
	return r
}

func (r *Result) AddAttribute(key, value string) *Result {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// Attribute returns the value for key and whether it was present.
func (r *Result) Attribute(key string) (string, bool) {
	for _, attr := range r.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}
