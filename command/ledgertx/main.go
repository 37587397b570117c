// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgertx/configuration"
	"github.com/bitmark-inc/ledgertx/storage"
	"github.com/bitmark-inc/ledgertx/transaction"
	"github.com/bitmark-inc/logger"
)

type metadata struct {
	config   *configuration.Configuration
	database *storage.Database
	key      string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that do not need a configuration file
var standalone = map[string]bool{
	"":         true,
	"generate": true,
	"decode":   true,
	"help":     true,
	"h":        true,
	"version":  true,
}

func main() {

	app := cli.NewApp()
	app.Name = "ledgertx"
	app.Usage = "build, sign and inspect ledger transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "ledgertx.conf",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "key, k",
			Value: "",
			Usage: " signing key as hex seed or full private key `HEX` (overrides configuration)",
		},
	}

	amountFlags := []cli.Flag{
		cli.UintFlag{
			Name:  "sequence, s",
			Value: 0,
			Usage: "*source account sequence `N`",
		},
		cli.StringFlag{
			Name:  "fee, f",
			Value: "10",
			Usage: " native fee `AMOUNT`",
		},
		cli.UintFlag{
			Name:  "source-tag",
			Value: 0,
			Usage: " source tag `TAG` (0 = none)",
		},
		cli.BoolFlag{
			Name:  "save",
			Usage: " store the signed transaction in the database",
		},
		cli.BoolFlag{
			Name:  "raw, r",
			Usage: " include packed bytes in the output",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a signing key, random unless a passphrase is given",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "passphrase, p",
					Value: "",
					Usage: " derive the key from `PASSPHRASE`",
				},
				cli.StringFlag{
					Name:  "salt",
					Value: defaultSalt,
					Usage: " salt for passphrase derivation `STRING`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "payment",
			Usage:     "create a signed payment",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "destination, d",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*`AMOUNT` as value or value/CUR/issuer",
				},
				cli.StringFlag{
					Name:  "send-max, m",
					Value: "",
					Usage: " maximum to spend `AMOUNT` (default: amount)",
				},
				cli.BoolFlag{
					Name:  "create",
					Usage: " create and fund the destination account",
				},
				cli.BoolFlag{
					Name:  "partial",
					Usage: " allow partial payment",
				},
				cli.BoolFlag{
					Name:  "limit",
					Usage: " limit quality",
				},
			}, amountFlags...),
			Action: runPayment,
		},
		{
			Name:      "offer",
			Usage:     "create a signed offer",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "pays, p",
					Value: "",
					Usage: "*taker pays `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "gets, g",
					Value: "",
					Usage: "*taker gets `AMOUNT`",
				},
				cli.UintFlag{
					Name:  "expiration, x",
					Value: 0,
					Usage: " expiry `TIME` (0 = never)",
				},
				cli.BoolFlag{
					Name:  "passive",
					Usage: " do not consume matching offers",
				},
			}, amountFlags...),
			Action: runOffer,
		},
		{
			Name:      "cancel",
			Usage:     "create a signed offer cancellation",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.UintFlag{
					Name:  "offer, o",
					Value: 0,
					Usage: "*sequence of the offer to cancel `N`",
				},
			}, amountFlags...),
			Action: runCancel,
		},
		{
			Name:      "decode",
			Usage:     "decode and verify a packed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*packed transaction `HEX`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "status",
			Usage:     "show a stored transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id `TXID`",
				},
			},
			Action: runStatus,
		},
		{
			Name:      "find",
			Usage:     "show the stored transaction for a sender and sequence",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, a",
					Value: "",
					Usage: "*sending `ACCOUNT`",
				},
				cli.UintFlag{
					Name:  "sequence, s",
					Value: 0,
					Usage: "*account sequence `N`",
				},
			},
			Action: runFind,
		},
		{
			Name:  "version",
			Usage: "display ledgertx version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			key:     c.GlobalString("key"),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if standalone[command] {
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config"))
		if nil != err {
			return err
		}
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}
		m.config = configuration
		if "" == m.key {
			m.key = configuration.PrivateKey
		}

		if err := logger.Initialise(configuration.Logging); nil != err {
			return err
		}
		if err := transaction.Initialise(); nil != err {
			return err
		}

		m.database, err = storage.Open(configuration.DatabasePath(), storage.ReadWrite)
		if nil != err {
			return err
		}
		return nil
	}

	// release the database
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.config {
			return nil
		}
		if nil != m.database {
			m.database.Close()
		}
		_ = transaction.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
