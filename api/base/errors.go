// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package base

import (
	"encoding/json"
	"net/http"

	"github.com/juju/errors"

	"github.com/forcekit/forcekit/api/params"
)

// unmarshalError maps a non-2xx Tooling API response onto the error
// taxonomy. The documented failure shape is a JSON array of
// {message, errorCode} objects; anything else keeps the status line.
func unmarshalError(resp *http.Response) error {
	var remote []params.Error
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil || len(remote) == 0 {
		return errors.Errorf("remote call failed: %s", resp.Status)
	}
	first := remote[0]
	switch {
	case resp.StatusCode == http.StatusNotFound || first.ErrorCode == "NOT_FOUND":
		return errors.NewNotFound(nil, first.Error())
	case resp.StatusCode == http.StatusUnauthorized || first.ErrorCode == "INVALID_SESSION_ID":
		return errors.NewUnauthorized(nil, first.Error())
	}
	return errors.Trace(first)
}
