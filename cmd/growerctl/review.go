package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/google/uuid"
)

func handlePending(ctx context.Context, flags *growerctlFlags) error {
	if err := flags.Pending.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse pending flags")
	}

	status := entity.StockUpdateStatus(*flags.Pending.status)
	if status != "" && !status.IsValid() {
		return errors.Errorf("unknown status %q", status)
	}

	c, err := newClient(flags.Pending.common)
	if err != nil {
		return err
	}

	role := entity.RoleGrower
	if *flags.Pending.admin {
		role = entity.RoleAdmin
	}

	requests, err := c.ListStockUpdateRequests(ctx, role, status)
	if err != nil {
		return err
	}

	printRequests(requests)

	return nil
}

func printRequests(requests []*entity.GrowerStockUpdate) {
	if len(requests) == 0 {
		fmt.Println("No requests")

		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRODUCT\tSTOCK\tPRICES\tREQUESTED")
	for _, r := range requests {
		stock := "-"
		if r.NewStock != nil {
			stock = fmt.Sprintf("%d", *r.NewStock)
			if r.PreviousStock != nil {
				stock = fmt.Sprintf("%d -> %d", *r.PreviousStock, *r.NewStock)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Status, r.ProductID, stock, formatPrices(r), r.RequestDate.Format("2006-01-02 15:04"))
	}
	_ = w.Flush()
}

func formatPrices(r *entity.GrowerStockUpdate) string {
	if len(r.RequestedPrices) == 0 {
		return "-"
	}

	ids := make([]uuid.UUID, 0, len(r.RequestedPrices))
	for id := range r.RequestedPrices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s: %s -> %s", id.String()[:8], r.PreviousPrices[id].StringFixed(2), r.RequestedPrices[id].StringFixed(2))
	}

	return out
}

func handleDecide(ctx context.Context, flags *decideFlags, approve bool) error {
	if err := flags.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", flags.cmd.Name())
	}
	if flags.cmd.NArg() != 1 {
		return errors.Errorf("usage: growerctl %s [options] <request-id>", flags.cmd.Name())
	}
	requestID, err := uuid.Parse(flags.cmd.Arg(0))
	if err != nil {
		return errors.Wrapf(err, "invalid request id %q", flags.cmd.Arg(0))
	}

	c, err := newClient(flags.common)
	if err != nil {
		return err
	}

	var update *entity.GrowerStockUpdate
	if approve {
		update, err = c.ApproveStockUpdateRequest(ctx, requestID, *flags.comment)
	} else {
		update, err = c.RejectStockUpdateRequest(ctx, requestID, *flags.comment)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Request %s is now %s\n", update.ID, update.Status)

	return nil
}
