// Package detailmatch provides an embedded Go client for matching building
// junction descriptions against a catalog of standard construction details.
//
// The catalog lives in memory by default, or in Valkey/Redis when an address
// is given. The built-in detail library seeds an empty catalog.
//
//	client, _ := detailmatch.New(ctx)
//	defer client.Close()
//
//	m, _ := client.Match(ctx, detailmatch.Query{
//	    Host:     "External Wall",
//	    Adjacent: "Slab",
//	})
//	if m.Matched {
//	    fmt.Println(m.Detail, m.Confidence) // External Wall - Slab Junction Waterproofing 0.8
//	}
//
// # Catalog management
//
//	client, _ := detailmatch.New(ctx, detailmatch.WithValkey("localhost:6379", ""))
//	_, _ = client.Details().Add(ctx, "Parapet Capping Flashing")
//	labels, _ := client.Details().List(ctx)
package detailmatch
