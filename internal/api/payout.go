package api

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"quest_admin/internal/model"
)

var errInvalidAmount = errors.New("payout amount must be a number")

// parseAmount accepts a JSON number or a numeric string. An explicit null, an
// empty string or the number 0 clears the amount; the string "0" stores zero.
func parseAmount(raw model.Optional[json.RawMessage]) (model.Optional[float64], error) {
	if !raw.Set {
		return model.Optional[float64]{}, nil
	}
	if raw.Value == nil {
		return model.Null[float64](), nil
	}

	var n float64
	if err := json.Unmarshal(*raw.Value, &n); err == nil {
		if n == 0 {
			return model.Null[float64](), nil
		}
		return model.Some(n), nil
	}

	var s string
	if err := json.Unmarshal(*raw.Value, &s); err != nil {
		return model.Optional[float64]{}, errInvalidAmount
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return model.Null[float64](), nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.Optional[float64]{}, errInvalidAmount
	}
	return model.Some(n), nil
}

// clearIfEmpty turns an explicit empty string into a null so the column is
// cleared rather than set to "".
func clearIfEmpty(o model.Optional[string]) model.Optional[string] {
	if o.Set && o.Value != nil && strings.TrimSpace(*o.Value) == "" {
		return model.Null[string]()
	}
	return o
}

func payoutUpdate(amount model.Optional[json.RawMessage], currency, txHash model.Optional[string]) (model.PayoutUpdate, error) {
	a, err := parseAmount(amount)
	if err != nil {
		return model.PayoutUpdate{}, err
	}

	return model.PayoutUpdate{
		Amount:   a,
		Currency: clearIfEmpty(currency),
		TxHash:   clearIfEmpty(txHash),
	}, nil
}
