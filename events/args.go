package events

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
)

// Arg is one named event argument.
type Arg struct {
	Name  string
	Value interface{}
}

// Sanitize filters a decoded argument bag down to its named entries.
// Decoders that mirror Solidity tuples emit every argument twice, once
// under its name and once under its position; any key that parses as a
// base-10 integer (sign and leading zeros included) is positional and gets
// dropped. Values are kept unchanged.
func Sanitize(args map[string]interface{}) map[string]interface{} {
	named := make(map[string]interface{}, len(args))
	for key, value := range args {
		if _, err := strconv.ParseInt(key, 10, 64); err == nil {
			continue
		}
		named[key] = value
	}
	return named
}

// Decode unpacks a log against an event definition into an ordered list of
// named arguments, indexed topics first-class alongside data fields.
// Arguments come back in declaration order, so positional duplicates never
// appear and nothing needs sanitizing afterwards.
func Decode(event abi.Event, log types.Log) ([]Arg, error) {
	values := make(map[string]interface{})

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(indexed) > 0 {
		if len(log.Topics) < len(indexed)+1 {
			return nil, fmt.Errorf("log has %d topics, event %s expects %d", len(log.Topics), event.Name, len(indexed)+1)
		}
		if err := abi.ParseTopicsIntoMap(values, indexed, log.Topics[1:1+len(indexed)]); err != nil {
			return nil, fmt.Errorf("failed to parse topics: %w", err)
		}
	}
	if len(log.Data) > 0 {
		if err := event.Inputs.UnpackIntoMap(values, log.Data); err != nil {
			return nil, fmt.Errorf("failed to unpack data: %w", err)
		}
	}

	args := make([]Arg, 0, len(event.Inputs))
	for _, input := range event.Inputs {
		value, ok := values[input.Name]
		if !ok {
			continue
		}
		args = append(args, Arg{Name: input.Name, Value: value})
	}
	return args, nil
}
