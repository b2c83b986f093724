package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/urfave/cli"

	"cuproof-range/cuproof"
)

func main() {
	app := cli.NewApp()
	app.Name = "cuproof"
	app.Usage = "non-interactive range proofs over an RSA group"
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "generate group parameters and save them",
			ArgsUsage: "<params-file>",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "fast", Usage: "use the small insecure test parameters"},
				cli.IntFlag{Name: "bits", Value: 2048, Usage: "modulus bit length for the trusted setup"},
			},
			Action: setupAction,
		},
		{
			Name:      "prove",
			Usage:     "prove that a value lies in [lower, upper)",
			ArgsUsage: "<params-file> <lower-hex> <upper-hex> <value-hex> <proof-file>",
			Action:    proveAction,
		},
		{
			Name:      "verify",
			Usage:     "verify a saved proof against saved parameters",
			ArgsUsage: "<params-file> <proof-file>",
			Action:    verifyAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.NewExitError("usage: setup [--fast] [--bits N] <params-file>", 1)
	}
	path := c.Args().Get(0)

	var g, h, n *big.Int
	if c.Bool("fast") {
		g, h, n = cuproof.FastTestSetup()
	} else {
		var err error
		g, h, n, err = cuproof.TrustedSetup(c.Int("bits"))
		if err != nil {
			return err
		}
	}
	if err := cuproof.SaveParams(path, g, h, n); err != nil {
		return err
	}
	fmt.Printf("saved public parameters to %s\n", path)
	return nil
}

func proveAction(c *cli.Context) error {
	if c.NArg() < 5 {
		return cli.NewExitError("usage: prove <params-file> <lower-hex> <upper-hex> <value-hex> <proof-file>", 1)
	}
	g, h, n, err := cuproof.LoadParams(c.Args().Get(0))
	if err != nil {
		return err
	}
	a, err := cuproof.HexToBigInt(c.Args().Get(1))
	if err != nil {
		return err
	}
	b, err := cuproof.HexToBigInt(c.Args().Get(2))
	if err != nil {
		return err
	}
	v, err := cuproof.HexToBigInt(c.Args().Get(3))
	if err != nil {
		return err
	}

	// the blinding must be random and stays with the prover
	r, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 256))
	if err != nil {
		return err
	}

	proof, err := cuproof.CuproofProve(v, r, a, b, g, h, n)
	if err != nil {
		return err
	}
	if err := cuproof.SaveProof(c.Args().Get(4), proof); err != nil {
		return err
	}
	fmt.Printf("saved proof to %s\n", c.Args().Get(4))
	return nil
}

func verifyAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.NewExitError("usage: verify <params-file> <proof-file>", 1)
	}
	g, h, n, err := cuproof.LoadParams(c.Args().Get(0))
	if err != nil {
		return err
	}
	proof, err := cuproof.LoadProof(c.Args().Get(1))
	if err != nil {
		return err
	}
	if cuproof.CuproofVerify(proof, g, h, n) {
		fmt.Println("VALID")
	} else {
		fmt.Println("INVALID")
	}
	return nil
}
