// Package welldata provides an HTTP client for the well data compute
// service.
//
// # Overview
//
// The compute service owns the workarea databases. This package reads the
// pieces a composite log needs (wells, curve catalogues, curve samples,
// formation tops, lithology descriptions, interpretation conclusions and
// discrete curves) and decodes them straight into complog types.
//
// # Client Usage
//
//	client, err := welldata.NewClient("127.0.0.1:20022")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	data, err := client.FetchCompositeData(ctx, workarea, "W1",
//		cfg.CurveNames(), welldata.FilterFor(cfg.DepthRange))
//	if err != nil {
//		log.Printf("fetch failed: %v", err)
//	}
//
// # API Endpoints
//
// All endpoints are read-only GETs under /api/well and take a workarea
// query parameter:
//
//   - /list: wells of the workarea
//   - /{well}/curves: curve catalogue
//   - /{well}/curve-data: samples for curves=a,b with optional
//     depth_min and depth_max
//   - /{well}/layers, /{well}/lithology, /{well}/interpretation
//   - /{well}/discrete-curves: discrete samples grouped by curve
//
// Null sample values decode to complog.Sample with Null set.
//
// # Concurrency
//
// FetchCompositeData issues its five requests in parallel through an
// errgroup. The first failure cancels the others and is returned wrapped
// with the well name.
//
// # Error Handling
//
// A status of 400 or above yields *APIError carrying the request path,
// the status and the service's "detail" message when the body has one.
// Use errors.As or IsNotFound to branch on it. Transport and decode
// failures are wrapped with fmt.Errorf.
package welldata
