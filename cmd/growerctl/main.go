package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"market/config"
	"market/internal/client"
	"market/internal/errors"
)

// Supported subcommands:
// - login:   Sign in and print a token
// - show:    Print the stock page of one product
// - edit:    Change variant prices and total stock
// - pending: List stock update requests
// - approve: Approve a pending request (admin)
// - reject:  Reject a pending request (admin)

type commonFlags struct {
	url   *string
	token *string
}

func addCommonFlags(cmd *flag.FlagSet) commonFlags {
	return commonFlags{
		url:   cmd.String("url", "", "API base URL (defaults to client.baseURL)"),
		token: cmd.String("token", "", "Bearer token (defaults to client.token)"),
	}
}

type loginFlags struct {
	cmd      *flag.FlagSet
	common   commonFlags
	role     *string
	email    *string
	password *string
}

type showFlags struct {
	cmd     *flag.FlagSet
	common  commonFlags
	product *string
}

type editFlags struct {
	cmd     *flag.FlagSet
	common  commonFlags
	product *string
	prices  priceFlag
	stock   *string
	reason  *string
}

type pendingFlags struct {
	cmd    *flag.FlagSet
	common commonFlags
	admin  *bool
	status *string
}

type decideFlags struct {
	cmd     *flag.FlagSet
	common  commonFlags
	comment *string
}

type growerctlFlags struct {
	Login   loginFlags
	Show    showFlags
	Edit    editFlags
	Pending pendingFlags
	Approve decideFlags
	Reject  decideFlags
}

func newFlags() *growerctlFlags {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	showCmd := flag.NewFlagSet("show", flag.ExitOnError)
	editCmd := flag.NewFlagSet("edit", flag.ExitOnError)
	pendingCmd := flag.NewFlagSet("pending", flag.ExitOnError)
	approveCmd := flag.NewFlagSet("approve", flag.ExitOnError)
	rejectCmd := flag.NewFlagSet("reject", flag.ExitOnError)

	flags := &growerctlFlags{
		Login: loginFlags{
			cmd:      loginCmd,
			common:   addCommonFlags(loginCmd),
			role:     loginCmd.String("role", "grower", "Portal to sign in to (grower, admin)"),
			email:    loginCmd.String("email", "", "Account email"),
			password: loginCmd.String("password", "", "Account password"),
		},
		Show: showFlags{
			cmd:     showCmd,
			common:  addCommonFlags(showCmd),
			product: showCmd.String("product", "", "Product ID"),
		},
		Edit: editFlags{
			cmd:     editCmd,
			common:  addCommonFlags(editCmd),
			product: editCmd.String("product", "", "Product ID"),
			stock:   editCmd.String("stock", "", "New total stock"),
			reason:  editCmd.String("reason", "", "Reason shown to admins"),
		},
		Pending: pendingFlags{
			cmd:    pendingCmd,
			common: addCommonFlags(pendingCmd),
			admin:  pendingCmd.Bool("admin", false, "List every grower's requests with an admin token"),
			status: pendingCmd.String("status", "PENDING", "Status filter (PENDING, APPROVED, REJECTED, empty for all)"),
		},
		Approve: decideFlags{
			cmd:     approveCmd,
			common:  addCommonFlags(approveCmd),
			comment: approveCmd.String("comment", "", "Comment for the grower"),
		},
		Reject: decideFlags{
			cmd:     rejectCmd,
			common:  addCommonFlags(rejectCmd),
			comment: rejectCmd.String("comment", "", "Comment for the grower"),
		},
	}
	editCmd.Var(&flags.Edit.prices, "price", "variantId=price, repeatable")

	return flags
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := runSubcommand(ctx, newFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, flags *growerctlFlags) error {
	switch os.Args[1] {
	case "login":
		return handleLogin(ctx, flags)
	case "show":
		return handleShow(ctx, flags)
	case "edit":
		return handleEdit(ctx, flags)
	case "pending":
		return handlePending(ctx, flags)
	case "approve":
		return handleDecide(ctx, &flags.Approve, true)
	case "reject":
		return handleDecide(ctx, &flags.Reject, false)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

// newClient builds the API client from configuration; flags win over config and env.
func newClient(common commonFlags) (*client.Client, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	clientCfg := *cfg.Client
	if *common.url != "" {
		clientCfg.BaseURL = *common.url
	}
	if *common.token != "" {
		clientCfg.Token = *common.token
	}
	if clientCfg.BaseURL == "" {
		return nil, errors.New("API base URL is required (-url or client.baseURL)")
	}

	return client.NewFromConfig(&clientCfg), nil
}

func printUsage() {
	fmt.Println("Usage: growerctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  login      Sign in and print a token")
	fmt.Println("  show       Print the stock page of a product")
	fmt.Println("  edit       Change variant prices and total stock")
	fmt.Println("  pending    List stock update requests")
	fmt.Println("  approve    Approve a pending stock update request")
	fmt.Println("  reject     Reject a pending stock update request")
	fmt.Println("")
	fmt.Println("Use 'growerctl <command> -h' for more information about a command.")
}
