// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

package base_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/juju/errors"
	coretesting "github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/forcekit/forcekit/api/base"
)

type connectionSuite struct {
	coretesting.IsolationSuite

	server  *httptest.Server
	handler http.HandlerFunc
}

var _ = gc.Suite(&connectionSuite{})

func (s *connectionSuite) SetUpTest(c *gc.C) {
	s.IsolationSuite.SetUpTest(c)
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
	s.AddCleanup(func(*gc.C) { s.server.Close() })
}

func (s *connectionSuite) newConnection(c *gc.C) *base.Connection {
	conn, err := base.NewConnection(base.Config{
		InstanceURL: s.server.URL,
		AccessToken: "sekrit-token",
	})
	c.Assert(err, jc.ErrorIsNil)
	return conn
}

func (s *connectionSuite) TestNewConnectionValidation(c *gc.C) {
	_, err := base.NewConnection(base.Config{})
	c.Assert(err, jc.Satisfies, errors.IsNotValid)

	_, err = base.NewConnection(base.Config{InstanceURL: "not a url"})
	c.Assert(err, jc.Satisfies, errors.IsNotValid)
}

func (s *connectionSuite) TestGet(c *gc.C) {
	var gotPath, gotAuth, gotAccept string
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Id": "0HD4p000000blUvGAI", "Status": "SUCCESS"}`))
	}

	conn := s.newConnection(c)
	defer conn.Close()

	var result struct {
		ID     string `json:"Id"`
		Status string `json:"Status"`
	}
	err := conn.Get(context.Background(), "tooling/sobjects/PackageUploadRequest/0HD4p000000blUvGAI", &result)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(gotPath, gc.Equals, "/services/data/v61.0/tooling/sobjects/PackageUploadRequest/0HD4p000000blUvGAI")
	c.Check(gotAuth, gc.Equals, "Bearer sekrit-token")
	c.Check(gotAccept, gc.Equals, "application/json")
	c.Check(result.ID, gc.Equals, "0HD4p000000blUvGAI")
	c.Check(result.Status, gc.Equals, "SUCCESS")
}

func (s *connectionSuite) TestPost(c *gc.C) {
	var gotBody map[string]interface{}
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.Method, gc.Equals, "POST")
		c.Check(r.Header.Get("Content-Type"), gc.Equals, "application/json")
		c.Check(json.NewDecoder(r.Body).Decode(&gotBody), jc.ErrorIsNil)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "0HD4p000000blUvGAI", "success": true, "errors": []}`))
	}

	conn := s.newConnection(c)
	defer conn.Close()

	var result struct {
		ID      string `json:"id"`
		Success bool   `json:"success"`
	}
	err := conn.Post(context.Background(), "tooling/sobjects/PackageUploadRequest",
		map[string]string{"VersionName": "Summer"}, &result)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(gotBody, gc.DeepEquals, map[string]interface{}{"VersionName": "Summer"})
	c.Check(result.ID, gc.Equals, "0HD4p000000blUvGAI")
	c.Check(result.Success, jc.IsTrue)
}

func (s *connectionSuite) TestQuery(c *gc.C) {
	var gotQuery string
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, gc.Equals, "/services/data/v61.0/tooling/query")
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalSize": 0, "done": true, "records": []}`))
	}

	conn := s.newConnection(c)
	defer conn.Close()

	var result struct {
		Done bool `json:"done"`
	}
	err := conn.Query(context.Background(), "SELECT Id FROM MetadataPackage", &result)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(gotQuery, gc.Equals, "SELECT Id FROM MetadataPackage")
	c.Check(result.Done, jc.IsTrue)
}

func (s *connectionSuite) TestNotFound(c *gc.C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`[{"message": "The requested resource does not exist", "errorCode": "NOT_FOUND"}]`))
	}

	conn := s.newConnection(c)
	defer conn.Close()

	err := conn.Get(context.Background(), "tooling/sobjects/PackageUploadRequest/0HDunknown", nil)
	c.Assert(err, jc.Satisfies, errors.IsNotFound)
	c.Check(err, gc.ErrorMatches, `The requested resource does not exist \(NOT_FOUND\)`)
}

func (s *connectionSuite) TestUnauthorized(c *gc.C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`[{"message": "Session expired or invalid", "errorCode": "INVALID_SESSION_ID"}]`))
	}

	conn := s.newConnection(c)
	defer conn.Close()

	err := conn.Get(context.Background(), "tooling/sobjects/PackageUploadRequest/0HD123", nil)
	c.Assert(err, jc.Satisfies, errors.IsUnauthorized)
}

func (s *connectionSuite) TestRemoteError(c *gc.C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`[{"message": "No such column 'Bogus'", "errorCode": "INVALID_FIELD"}]`))
	}

	conn := s.newConnection(c)
	defer conn.Close()

	err := conn.Query(context.Background(), "SELECT Bogus FROM MetadataPackage", nil)
	c.Assert(err, gc.ErrorMatches, `No such column 'Bogus' \(INVALID_FIELD\)`)
	c.Check(err, gc.Not(jc.Satisfies), errors.IsNotFound)
}

func (s *connectionSuite) TestUndocumentedErrorBody(c *gc.C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}

	conn := s.newConnection(c)
	defer conn.Close()

	err := conn.Get(context.Background(), "tooling/sobjects/PackageUploadRequest/0HD123", nil)
	c.Assert(err, gc.ErrorMatches, "remote call failed: 502 Bad Gateway")
}
