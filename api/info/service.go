// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

import (
	"net/http"

	"github.com/gorilla/rpc/v2"
	"go.uber.org/zap"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/constants"
	"github.com/LAVASoftWorks/vkct-core/utils/logging"
	"github.com/LAVASoftWorks/vkct-core/version"

	cjson "github.com/LAVASoftWorks/vkct-core/utils/json"
)

const (
	Endpoint    = "/ext/info"
	ServiceName = "info"
)

// Parameters describe the node the info API reports on.
type Parameters struct {
	NetworkID   uint32
	ProgramID   ids.ID
	SeedVersion string
}

// Info is the API service for unprivileged info on a node
type Info struct {
	Parameters
	log logging.Logger
}

// NewHandler returns the handler serving the info API.
func NewHandler(parameters Parameters, log logging.Logger) (http.Handler, error) {
	server := rpc.NewServer()
	codec := cjson.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return server, server.RegisterService(&Info{
		Parameters: parameters,
		log:        log,
	}, ServiceName)
}

// GetNodeVersionReply are the results from calling GetNodeVersion
type GetNodeVersionReply struct {
	Version         string `json:"version"`
	DatabaseVersion string `json:"databaseVersion"`
	GitCommit       string `json:"gitCommit"`
	GoVersion       string `json:"goVersion"`
}

// GetNodeVersion returns the version this node is running
func (i *Info) GetNodeVersion(_ *http.Request, _ *struct{}, reply *GetNodeVersionReply) error {
	i.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "getNodeVersion"),
	)

	versions := version.GetVersions()
	reply.Version = versions.Application
	reply.DatabaseVersion = versions.Database
	reply.GitCommit = versions.Commit
	reply.GoVersion = versions.Go
	return nil
}

// GetNetworkIDReply are the results from calling GetNetworkID
type GetNetworkIDReply struct {
	NetworkID cjson.Uint32 `json:"networkID"`
}

// GetNetworkID returns the network ID this node is running on
func (i *Info) GetNetworkID(_ *http.Request, _ *struct{}, reply *GetNetworkIDReply) error {
	i.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "getNetworkID"),
	)

	reply.NetworkID = cjson.Uint32(i.NetworkID)
	return nil
}

// GetNetworkNameReply is the result from calling GetNetworkName
type GetNetworkNameReply struct {
	NetworkName string `json:"networkName"`
}

// GetNetworkName returns the network name this node is running on
func (i *Info) GetNetworkName(_ *http.Request, _ *struct{}, reply *GetNetworkNameReply) error {
	i.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "getNetworkName"),
	)

	reply.NetworkName = constants.NetworkName(i.NetworkID)
	return nil
}

// GetProgramReply describes the registry program this node executes.
type GetProgramReply struct {
	ProgramID   ids.ID `json:"programID"`
	SeedVersion string `json:"seedVersion"`
}

func (i *Info) GetProgram(_ *http.Request, _ *struct{}, reply *GetProgramReply) error {
	i.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "getProgram"),
	)

	reply.ProgramID = i.ProgramID
	reply.SeedVersion = i.SeedVersion
	return nil
}
