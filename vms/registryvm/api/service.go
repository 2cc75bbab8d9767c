// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/rpc/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/LAVASoftWorks/vkct-core/api"
	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/formatting"
	"github.com/LAVASoftWorks/vkct-core/utils/logging"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/projection"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/state"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/txs"

	cjson "github.com/LAVASoftWorks/vkct-core/utils/json"
)

const (
	// Endpoint is the path the registry service is served on.
	Endpoint    = "/ext/bc/registry"
	ServiceName = "registry"

	airdropInterval = 12 * time.Second
	airdropBurst    = 5
)

var errAirdropThrottled = errors.New("too many airdrop requests, try again later")

// Service is the JSON-RPC API of the registry VM.
type Service struct {
	vm       *registryvm.VM
	log      logging.Logger
	airdrops *rate.Limiter
}

// NewHandler returns the HTTP handler serving [vm]'s API.
func NewHandler(vm *registryvm.VM, log logging.Logger) (http.Handler, error) {
	server := rpc.NewServer()
	codec := cjson.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return server, server.RegisterService(&Service{
		vm:       vm,
		log:      log,
		airdrops: rate.NewLimiter(rate.Every(airdropInterval), airdropBurst),
	}, ServiceName)
}

type IssueTxArgs struct {
	Tx       string              `json:"tx"`
	Encoding formatting.Encoding `json:"encoding"`
}

// IssueTx executes a signed transaction.
func (s *Service) IssueTx(r *http.Request, args *IssueTxArgs, reply *api.JSONTxID) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "issueTx"),
	)

	txBytes, err := formatting.Decode(args.Encoding, args.Tx)
	if err != nil {
		return fmt.Errorf("problem decoding transaction: %w", err)
	}
	tx, err := txs.Parse(txBytes)
	if err != nil {
		return err
	}
	reply.TxID, err = s.vm.IssueTx(r.Context(), tx)
	return err
}

type GetRegistryReply struct {
	Address  ids.ID       `json:"address"`
	Admin    ids.ID       `json:"admin"`
	Capacity cjson.Uint32 `json:"capacity"`
	Entries  []ids.ID     `json:"entries"`
	Paused   bool         `json:"paused"`
}

func (s *Service) getRegistry(kind state.Kind, reply *GetRegistryReply) error {
	record, err := s.vm.Registry(kind)
	if err != nil {
		return err
	}
	reply.Address = s.vm.RegistryAddress(kind)
	reply.Admin = record.Admin
	reply.Capacity = cjson.Uint32(record.Capacity)
	reply.Entries = record.Entries
	reply.Paused = record.Paused
	return nil
}

// GetTokenRegistry returns the admin, allowlist and pause flag of the token
// registry.
func (s *Service) GetTokenRegistry(_ *http.Request, _ *struct{}, reply *GetRegistryReply) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "getTokenRegistry"),
	)
	return s.getRegistry(state.TokenKind, reply)
}

// GetCollectionRegistry returns the admin and allowlist of the collection
// registry.
func (s *Service) GetCollectionRegistry(_ *http.Request, _ *struct{}, reply *GetRegistryReply) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "getCollectionRegistry"),
	)
	return s.getRegistry(state.CollectionKind, reply)
}

type GetWithdrawalStatusReply struct {
	Paused bool   `json:"paused"`
	Status string `json:"status"`
}

func (s *Service) GetWithdrawalStatus(_ *http.Request, _ *struct{}, reply *GetWithdrawalStatusReply) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "getWithdrawalStatus"),
	)

	paused, err := s.vm.WithdrawalStatus()
	if err != nil {
		return err
	}
	reply.Paused = paused
	reply.Status = projection.WithdrawalStatus(paused)
	return nil
}

type DeriveAddressArgs struct {
	// VaultNFT optionally asks for the vault authority of this NFT mint
	VaultNFT *ids.ID `json:"vaultNFT,omitempty"`
}

type DeriveAddressReply struct {
	ProgramID          ids.ID      `json:"programID"`
	SeedVersion        string      `json:"seedVersion"`
	TokenRegistry      ids.ID      `json:"tokenRegistry"`
	CollectionRegistry ids.ID      `json:"collectionRegistry"`
	VaultAuthority     *ids.ID     `json:"vaultAuthority,omitempty"`
	VaultBump          cjson.Uint8 `json:"vaultBump"`
}

// DeriveAddress returns the derived addresses of this deployment.
func (s *Service) DeriveAddress(_ *http.Request, args *DeriveAddressArgs, reply *DeriveAddressReply) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "deriveAddress"),
	)
	return deriveAddress(s.vm, args, reply)
}

func deriveAddress(vm *registryvm.VM, args *DeriveAddressArgs, reply *DeriveAddressReply) error {
	config := vm.Config()
	reply.ProgramID = config.ProgramID
	reply.SeedVersion = config.SeedVersion
	reply.TokenRegistry = vm.RegistryAddress(state.TokenKind)
	reply.CollectionRegistry = vm.RegistryAddress(state.CollectionKind)
	if args.VaultNFT == nil {
		return nil
	}

	vault, bump, err := vm.VaultAuthority(*args.VaultNFT)
	if err != nil {
		return err
	}
	reply.VaultAuthority = &vault
	reply.VaultBump = cjson.Uint8(bump)
	return nil
}

type GetNonceReply struct {
	Nonce cjson.Uint64 `json:"nonce"`
}

// GetNonce returns the nonce the next transaction of an address must use.
func (s *Service) GetNonce(_ *http.Request, args *api.JSONAddress, reply *GetNonceReply) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "getNonce"),
		zap.Stringer("address", args.Address),
	)

	nonce, err := s.vm.Nonce(args.Address)
	reply.Nonce = cjson.Uint64(nonce)
	return err
}

type GetBalanceReply struct {
	Balance cjson.Uint64 `json:"balance"`
}

func (s *Service) GetBalance(_ *http.Request, args *api.JSONAddress, reply *GetBalanceReply) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "getBalance"),
		zap.Stringer("address", args.Address),
	)

	balance, err := s.vm.Balance(args.Address)
	reply.Balance = cjson.Uint64(balance)
	return err
}

type GetAccountArgs struct {
	Address  ids.ID              `json:"address"`
	Encoding formatting.Encoding `json:"encoding"`
}

type GetAccountReply struct {
	Owner    ids.ID              `json:"owner"`
	Deposit  cjson.Uint64        `json:"deposit"`
	Data     string              `json:"data"`
	Encoding formatting.Encoding `json:"encoding"`
}

// GetAccount returns the raw account stored at an address.
func (s *Service) GetAccount(_ *http.Request, args *GetAccountArgs, reply *GetAccountReply) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "getAccount"),
		zap.Stringer("address", args.Address),
	)

	acct, err := s.vm.Account(args.Address)
	if err != nil {
		return err
	}
	reply.Owner = acct.Owner
	reply.Deposit = cjson.Uint64(acct.Deposit)
	reply.Encoding = args.Encoding
	reply.Data, err = formatting.Encode(args.Encoding, acct.Data)
	return err
}

type AirdropArgs struct {
	Address ids.ID       `json:"address"`
	Amount  cjson.Uint64 `json:"amount"`
}

// Airdrop funds an address on development networks. Requests beyond a small
// burst are throttled.
func (s *Service) Airdrop(r *http.Request, args *AirdropArgs, _ *api.EmptyReply) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "airdrop"),
		zap.Stringer("address", args.Address),
	)
	if !s.airdrops.Allow() {
		return errAirdropThrottled
	}
	return s.vm.Airdrop(r.Context(), args.Address, uint64(args.Amount))
}
