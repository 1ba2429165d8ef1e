// Command clubstake operates a club staking ledger stored in a local bbolt
// database: it submits commands, answers queries and runs the keeper.
package main

import (
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/furysport/furycontracts-sub000/clubstaking"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "clubstake"
	app.Usage = "club staking ledger"
	app.Version = version
	app.Flags = []cli.Flag{dataDirFlag, configFlag, logLevelFlag, debugFlag}
	app.Commands = []cli.Command{
		{
			Name:   "init",
			Usage:  "create the ledger and write the config file if missing",
			Flags:  []cli.Flag{firstDistributionFlag},
			Action: initAction,
		},
		{
			Name:   "stake",
			Usage:  "stake tokens on a club",
			Flags:  []cli.Flag{senderFlag, clubFlag, stakerFlag, amountFlag, feesFlag},
			Action: execAction(stakeCmd),
		},
		{
			Name:   "buy",
			Usage:  "buy a club",
			Flags:  []cli.Flag{senderFlag, clubFlag, buyerFlag, sellerFlag, priceFlag, feesFlag},
			Action: execAction(buyCmd),
		},
		{
			Name:   "release",
			Usage:  "release an owned club for sale",
			Flags:  []cli.Flag{senderFlag, clubFlag, ownerFlag},
			Action: execAction(releaseCmd),
		},
		{
			Name:   "withdraw",
			Usage:  "withdraw stake, deferred through bonding unless --immediate",
			Flags:  []cli.Flag{senderFlag, clubFlag, stakerFlag, amountFlag, immediateFlag, feesFlag},
			Action: execAction(withdrawCmd),
		},
		{
			Name:  "claim",
			Usage: "claim accrued rewards",
			Subcommands: []cli.Command{
				{
					Name:   "staker",
					Usage:  "claim a staker's reward in one club",
					Flags:  []cli.Flag{senderFlag, clubFlag, stakerFlag},
					Action: execAction(claimStakerCmd),
				},
				{
					Name:   "owner",
					Usage:  "claim a club owner's reward",
					Flags:  []cli.Flag{senderFlag, clubFlag, ownerFlag},
					Action: execAction(claimOwnerCmd),
				},
				{
					Name:   "previous-owner",
					Usage:  "claim reward owed to a former owner",
					Flags:  []cli.Flag{senderFlag, addressFlag},
					Action: execAction(claimPreviousOwnerCmd),
				},
			},
		},
		{
			Name:   "fund",
			Usage:  "add tokens to the reward pool (token contract only)",
			Flags:  []cli.Flag{senderFlag, fromFlag, amountFlag},
			Action: execAction(fundCmd),
		},
		{
			Name:   "distribute",
			Usage:  "distribute the reward pool (admin only)",
			Flags:  []cli.Flag{senderFlag},
			Action: execAction(distributeCmd),
		},
		{
			Name:   "sweep",
			Usage:  "remove matured bonds (admin only)",
			Flags:  []cli.Flag{senderFlag},
			Action: execAction(sweepCmd),
		},
		{
			Name:        "query",
			Usage:       "read ledger state",
			Subcommands: queryCommands(),
		},
		{
			Name:   "keeper",
			Usage:  "run scheduled distribution and sweeps, serving metrics",
			Flags:  []cli.Flag{metricsAddrFlag},
			Action: keeperAction,
		},
	}
	return app
}

func stakeCmd(ctx *cli.Context) clubstaking.Command {
	return clubstaking.StakeCmd{
		Sender: ctx.String(senderFlag.Name),
		Club:   ctx.String(clubFlag.Name),
		Staker: orSender(ctx, stakerFlag.Name),
		Amount: ctx.Uint64(amountFlag.Name),
		Fees:   ctx.Uint64(feesFlag.Name),
	}
}

func buyCmd(ctx *cli.Context) clubstaking.Command {
	return clubstaking.BuyClubCmd{
		Sender: ctx.String(senderFlag.Name),
		Club:   ctx.String(clubFlag.Name),
		Buyer:  orSender(ctx, buyerFlag.Name),
		Seller: ctx.String(sellerFlag.Name),
		Price:  ctx.Uint64(priceFlag.Name),
		Fees:   ctx.Uint64(feesFlag.Name),
	}
}

func releaseCmd(ctx *cli.Context) clubstaking.Command {
	return clubstaking.ReleaseClubCmd{
		Sender: ctx.String(senderFlag.Name),
		Club:   ctx.String(clubFlag.Name),
		Owner:  orSender(ctx, ownerFlag.Name),
	}
}

func withdrawCmd(ctx *cli.Context) clubstaking.Command {
	return clubstaking.WithdrawCmd{
		Sender:    ctx.String(senderFlag.Name),
		Club:      ctx.String(clubFlag.Name),
		Staker:    orSender(ctx, stakerFlag.Name),
		Amount:    ctx.Uint64(amountFlag.Name),
		Immediate: ctx.Bool(immediateFlag.Name),
		Fees:      ctx.Uint64(feesFlag.Name),
	}
}

func claimStakerCmd(ctx *cli.Context) clubstaking.Command {
	return clubstaking.ClaimStakerRewardCmd{
		Sender: ctx.String(senderFlag.Name),
		Club:   ctx.String(clubFlag.Name),
		Staker: orSender(ctx, stakerFlag.Name),
	}
}

func claimOwnerCmd(ctx *cli.Context) clubstaking.Command {
	return clubstaking.ClaimOwnerRewardCmd{
		Sender: ctx.String(senderFlag.Name),
		Club:   ctx.String(clubFlag.Name),
		Owner:  orSender(ctx, ownerFlag.Name),
	}
}

func claimPreviousOwnerCmd(ctx *cli.Context) clubstaking.Command {
	return clubstaking.ClaimPreviousOwnerRewardCmd{
		Sender:        ctx.String(senderFlag.Name),
		PreviousOwner: orSender(ctx, addressFlag.Name),
	}
}

func fundCmd(ctx *cli.Context) clubstaking.Command {
	return clubstaking.FundRewardPoolCmd{
		Sender: ctx.String(senderFlag.Name),
		From:   ctx.String(fromFlag.Name),
		Amount: ctx.Uint64(amountFlag.Name),
	}
}

func distributeCmd(ctx *cli.Context) clubstaking.Command {
	return clubstaking.DistributeRewardsCmd{Sender: ctx.String(senderFlag.Name)}
}

func sweepCmd(ctx *cli.Context) clubstaking.Command {
	return clubstaking.SweepMaturedBondsCmd{Sender: ctx.String(senderFlag.Name)}
}

// orSender returns the named flag, falling back to --sender.
func orSender(ctx *cli.Context, name string) string {
	if v := ctx.String(name); v != "" {
		return v
	}
	return ctx.String(senderFlag.Name)
}
