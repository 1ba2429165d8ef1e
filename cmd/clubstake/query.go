package main

import (
	"context"
	"fmt"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/furysport/furycontracts-sub000/clubstaking"
)

// queryAction opens the ledger, runs fn and prints its result.
func queryAction(fn func(ctx *cli.Context, svc *clubstaking.Service) (interface{}, error)) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		n, err := openNode(ctx)
		if err != nil {
			return err
		}
		defer n.close()

		v, err := fn(ctx, n.svc)
		if err != nil {
			return err
		}
		return printJSON(ctx, v)
	}
}

func queryCommands() []cli.Command {
	return []cli.Command{
		{
			Name:  "ownership",
			Usage: "ownership of one club, or every club",
			Flags: []cli.Flag{clubFlag, ownerFlag},
			Action: queryAction(func(ctx *cli.Context, svc *clubstaking.Service) (interface{}, error) {
				if club := ctx.String(clubFlag.Name); club != "" {
					return svc.Ownership(club)
				}
				if owner := ctx.String(ownerFlag.Name); owner != "" {
					return svc.OwnershipsForOwner(owner)
				}
				return svc.AllOwnerships()
			}),
		},
		{
			Name:  "previous-owner",
			Usage: "reward owed to one former owner, or all of them",
			Flags: []cli.Flag{addressFlag},
			Action: queryAction(func(ctx *cli.Context, svc *clubstaking.Service) (interface{}, error) {
				if addr := ctx.String(addressFlag.Name); addr != "" {
					return svc.PreviousOwner(addr)
				}
				return svc.AllPreviousOwners()
			}),
		},
		{
			Name:  "stakes",
			Usage: "stakes of a club, of a user, or all stakes",
			Flags: []cli.Flag{clubFlag, userFlag},
			Action: queryAction(func(ctx *cli.Context, svc *clubstaking.Service) (interface{}, error) {
				club, user := ctx.String(clubFlag.Name), ctx.String(userFlag.Name)
				switch {
				case club != "" && user != "":
					return filterStakes(svc, club, user)
				case club != "":
					return svc.Stakes(club)
				case user != "":
					return svc.StakesForUser(user)
				}
				return svc.AllStakes()
			}),
		},
		{
			Name:  "bonds",
			Usage: "bonds of a club, of a user in a club, or all bonds",
			Flags: []cli.Flag{clubFlag, userFlag},
			Action: queryAction(func(ctx *cli.Context, svc *clubstaking.Service) (interface{}, error) {
				club, user := ctx.String(clubFlag.Name), ctx.String(userFlag.Name)
				switch {
				case club != "" && user != "":
					return svc.BondsForUser(club, user)
				case club != "":
					return svc.Bonds(club)
				case user != "":
					return nil, fmt.Errorf("--user requires --club")
				}
				return svc.AllBonds()
			}),
		},
		{
			Name:  "ranking",
			Usage: "clubs ordered by total stake",
			Action: queryAction(func(_ *cli.Context, svc *clubstaking.Service) (interface{}, error) {
				return svc.ClubRanking()
			}),
		},
		{
			Name:  "pool",
			Usage: "reward pool and next distribution time",
			Action: queryAction(func(_ *cli.Context, svc *clubstaking.Service) (interface{}, error) {
				return svc.RewardAccumulator()
			}),
		},
		{
			Name:  "funds",
			Usage: "aggregate staked balance of an address",
			Flags: []cli.Flag{addressFlag},
			Action: queryAction(func(ctx *cli.Context, svc *clubstaking.Service) (interface{}, error) {
				return svc.StakingFunds(ctx.String(addressFlag.Name))
			}),
		},
		{
			Name:  "quote",
			Usage: "fee required for a command",
			Flags: []cli.Flag{commandFlag, amountFlag},
			Action: queryAction(func(ctx *cli.Context, svc *clubstaking.Service) (interface{}, error) {
				var cmd clubstaking.Command
				amount := ctx.Uint64(amountFlag.Name)
				switch name := ctx.String(commandFlag.Name); name {
				case "stake":
					cmd = clubstaking.StakeCmd{Amount: amount}
				case "withdraw":
					cmd = clubstaking.WithdrawCmd{Amount: amount, Immediate: true}
				case "buy_club", "buy":
					cmd = clubstaking.BuyClubCmd{}
				default:
					return nil, fmt.Errorf("no fee quote for %q", name)
				}
				fee, err := svc.QuoteFee(context.Background(), cmd)
				if err != nil {
					return nil, err
				}
				return map[string]interface{}{"command": cmd.Name(), "amount": amount, "fee": fee}, nil
			}),
		},
	}
}

func filterStakes(svc *clubstaking.Service, club, user string) ([]clubstaking.StakeRecord, error) {
	all, err := svc.Stakes(club)
	if err != nil {
		return nil, err
	}
	var out []clubstaking.StakeRecord
	for _, s := range all {
		if s.StakerAddress == user {
			out = append(out, s)
		}
	}
	return out, nil
}
