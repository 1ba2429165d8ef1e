package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	dataDirFlag = cli.StringFlag{
		Name:  "datadir",
		Usage: "directory holding the ledger database and config file (default ~/.clubstake)",
	}
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to the config file (default <datadir>/config)",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "loglevel",
		Usage: "log level (debug|info|warn|error)",
	}
	debugFlag = cli.BoolFlag{
		Name:  "debug",
		Usage: "development logging",
	}
	senderFlag = cli.StringFlag{
		Name:  "sender",
		Usage: "address submitting the command",
	}
	clubFlag = cli.StringFlag{
		Name:  "club",
		Usage: "club name",
	}
	stakerFlag = cli.StringFlag{
		Name:  "staker",
		Usage: "staker address",
	}
	ownerFlag = cli.StringFlag{
		Name:  "owner",
		Usage: "club owner address",
	}
	addressFlag = cli.StringFlag{
		Name:  "address",
		Usage: "account address",
	}
	amountFlag = cli.Uint64Flag{
		Name:  "amount",
		Usage: "token amount",
	}
	feesFlag = cli.Uint64Flag{
		Name:  "fees",
		Usage: "fee-denomination funds attached to the command",
	}
	buyerFlag = cli.StringFlag{
		Name:  "buyer",
		Usage: "buyer address",
	}
	sellerFlag = cli.StringFlag{
		Name:  "seller",
		Usage: "current owner expected to sell (empty for a new club)",
	}
	priceFlag = cli.Uint64Flag{
		Name:  "price",
		Usage: "offered price, must equal the configured club price",
	}
	immediateFlag = cli.BoolFlag{
		Name:  "immediate",
		Usage: "withdraw now, burning part of the principal that is not unbonded",
	}
	fromFlag = cli.StringFlag{
		Name:  "from",
		Usage: "address that sent the tokens",
	}
	userFlag = cli.StringFlag{
		Name:  "user",
		Usage: "filter by staker address",
	}
	commandFlag = cli.StringFlag{
		Name:  "command",
		Value: "stake",
		Usage: "command to quote (stake|buy_club|withdraw)",
	}
	firstDistributionFlag = cli.StringFlag{
		Name:  "first-distribution",
		Usage: "RFC3339 time of the first distribution (default from config, else immediately)",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:  "metrics-addr",
		Usage: "listen address for /metrics (default from config; empty disables)",
	}
)
