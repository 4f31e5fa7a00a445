package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"market/internal/client/stockeditor"
	"market/internal/domain/entity"
	"market/internal/errors"
	"market/internal/querycache"

	"github.com/google/uuid"
)

// priceFlag collects repeated -price variantId=price values.
type priceFlag map[uuid.UUID]string

func (p *priceFlag) String() string {
	parts := make([]string, 0, len(*p))
	for id, price := range *p {
		parts = append(parts, id.String()+"="+price)
	}

	return strings.Join(parts, ",")
}

func (p *priceFlag) Set(value string) error {
	rawID, price, ok := strings.Cut(value, "=")
	if !ok {
		return errors.Errorf("expected variantId=price, got %q", value)
	}
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return errors.Wrapf(err, "invalid variant id %q", rawID)
	}
	if *p == nil {
		*p = make(priceFlag)
	}
	(*p)[id] = price

	return nil
}

func handleLogin(ctx context.Context, flags *growerctlFlags) error {
	if err := flags.Login.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse login flags")
	}

	c, err := newClient(flags.Login.common)
	if err != nil {
		return err
	}

	out, err := c.Login(ctx, entity.Role(*flags.Login.role), *flags.Login.email, *flags.Login.password)
	if err != nil {
		return err
	}

	fmt.Println(out.Token)

	return nil
}

func parseProduct(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, errors.New("--product flag is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid product id %q", raw)
	}

	return id, nil
}

func handleShow(ctx context.Context, flags *growerctlFlags) error {
	if err := flags.Show.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse show flags")
	}
	productID, err := parseProduct(*flags.Show.product)
	if err != nil {
		return err
	}

	c, err := newClient(flags.Show.common)
	if err != nil {
		return err
	}

	data, err := c.GetGrowerStockPageData(ctx, productID)
	if err != nil {
		return err
	}

	printStockPage(data)

	return nil
}

func printStockPage(data *entity.GrowerStockPageData) {
	stock := 0
	if data.GrowerProduct != nil {
		stock = data.GrowerProduct.Stock
	}
	fmt.Printf("%s (%s)\n", data.Product.Name, data.Product.ID)
	fmt.Printf("Your stock: %d  Global stock: %d\n\n", stock, data.GlobalStock)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tOPTION\tCATALOG\tYOUR PRICE")
	for _, v := range data.Product.Variants {
		yours := "-"
		if data.GrowerProduct != nil {
			if price, ok := data.GrowerProduct.PriceOf(v.ID); ok {
				yours = price.StringFixed(2)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.ID, v.OptionValue, v.Price.StringFixed(2), yours)
	}
	_ = w.Flush()

	if p := data.PendingUpdate; p != nil {
		fmt.Printf("\nPending request %s since %s\n", p.ID, p.RequestDate.Format("2006-01-02 15:04"))
	}
}

func handleEdit(ctx context.Context, flags *growerctlFlags) error {
	if err := flags.Edit.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse edit flags")
	}
	productID, err := parseProduct(*flags.Edit.product)
	if err != nil {
		return err
	}

	c, err := newClient(flags.Edit.common)
	if err != nil {
		return err
	}

	// The cache lives for this process only, so the grower id in its keys is irrelevant.
	cache := querycache.New()
	editor := stockeditor.New(c, cache, uuid.Nil, productID)
	if _, err := editor.Open(ctx); err != nil {
		return err
	}

	result, err := editor.Submit(ctx, stockeditor.Input{
		Prices: flags.Edit.prices,
		Stock:  *flags.Edit.stock,
		Reason: *flags.Edit.reason,
	})
	if err != nil {
		var verr *stockeditor.ValidationError
		if errors.As(err, &verr) {
			return errors.Errorf("invalid %s: %s", verr.Field, verr.Message)
		}

		return err
	}

	if !result.Changed() {
		fmt.Println("Nothing changed")

		return nil
	}

	fmt.Printf("Updated %d price(s)", len(result.Prices))
	if result.StockChanged {
		fmt.Printf(" and stock to %d", result.NewStock)
	}
	fmt.Println()

	if global, err := stockeditor.ProductGlobalStock(ctx, c, cache, productID); err == nil {
		fmt.Printf("Global stock is now %d\n", global)
	}

	if result.RequestErr != nil {
		return errors.Wrap(result.RequestErr, "changes saved but the validation request failed")
	}
	fmt.Printf("Validation request %s is %s\n", result.Request.ID, result.Request.Status)

	return nil
}
