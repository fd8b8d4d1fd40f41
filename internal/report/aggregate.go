// Package report computes the aggregate views over validated transactions
// and renders them into the fixed-layout sales report.
package report

import (
	"sort"

	"salesreport/internal"
)

type Overall struct {
	TotalRevenue  float64
	Transactions  int
	AvgOrderValue float64
	FirstDate     string
	LastDate      string
}

type RegionStat struct {
	Region       string
	Sales        float64
	Share        float64 // percent of grand total revenue
	Transactions int
	AvgOrder     float64
}

type ProductStat struct {
	Name     string
	Quantity int
	Revenue  float64
}

type CustomerStat struct {
	CustomerID string
	Spent      float64
	Orders     int
	AvgOrder   float64
	Products   []string
}

type DayStat struct {
	Date         string
	Revenue      float64
	Transactions int
	Customers    int
}

type PeakDay struct {
	Date         string
	Revenue      float64
	Transactions int
}

type Enrichment struct {
	Total       int
	Matched     int
	SuccessRate float64
	Unmatched   []string
}

type Summary struct {
	TopN         int
	Overall      Overall
	Regions      []RegionStat
	TopProducts  []ProductStat
	LowProducts  []ProductStat
	TopCustomers []CustomerStat
	Daily        []DayStat
	Peak         PeakDay
	HasPeak      bool
	Enrichment   Enrichment
}

// Build computes every aggregate view in one pass over the valid set plus one
// over the enriched set. Monetary figures are recomputed from
// Quantity×UnitPrice per transaction. Descending sorts break ties on the
// original input index, so equal keys keep first-appearance order.
func Build(valid []internal.Transaction, enriched []internal.EnrichedTransaction, topN, lowQtyThreshold int) Summary {
	s := Summary{TopN: topN}
	s.Overall = buildOverall(valid)
	s.Regions = buildRegions(valid, s.Overall.TotalRevenue)
	s.TopProducts, s.LowProducts = buildProducts(valid, topN, lowQtyThreshold)
	s.TopCustomers = buildCustomers(valid, topN)
	s.Daily = buildDaily(valid)
	s.Peak, s.HasPeak = buildPeak(valid)
	s.Enrichment = buildEnrichment(enriched)
	return s
}

func buildOverall(valid []internal.Transaction) Overall {
	o := Overall{Transactions: len(valid)}
	for i, tx := range valid {
		o.TotalRevenue += tx.Amount()
		if i == 0 || tx.Date < o.FirstDate {
			o.FirstDate = tx.Date
		}
		if i == 0 || tx.Date > o.LastDate {
			o.LastDate = tx.Date
		}
	}
	if o.Transactions > 0 {
		o.AvgOrderValue = o.TotalRevenue / float64(o.Transactions)
	}
	return o
}

func buildRegions(valid []internal.Transaction, totalRevenue float64) []RegionStat {
	type acc struct {
		stat     RegionStat
		firstIdx int
	}
	byRegion := map[string]*acc{}
	order := make([]string, 0)

	for i, tx := range valid {
		a, ok := byRegion[tx.Region]
		if !ok {
			a = &acc{stat: RegionStat{Region: tx.Region}, firstIdx: i}
			byRegion[tx.Region] = a
			order = append(order, tx.Region)
		}
		a.stat.Sales += tx.Amount()
		a.stat.Transactions++
	}

	out := make([]RegionStat, 0, len(order))
	idx := make([]int, 0, len(order))
	for _, region := range order {
		a := byRegion[region]
		if totalRevenue > 0 {
			a.stat.Share = a.stat.Sales / totalRevenue * 100
		}
		if a.stat.Transactions > 0 {
			a.stat.AvgOrder = a.stat.Sales / float64(a.stat.Transactions)
		}
		out = append(out, a.stat)
		idx = append(idx, a.firstIdx)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Sales != out[j].Sales {
			return out[i].Sales > out[j].Sales
		}
		return idx[i] < idx[j]
	})
	return out
}

func buildProducts(valid []internal.Transaction, topN, lowQtyThreshold int) (top, low []ProductStat) {
	type acc struct {
		stat     ProductStat
		firstIdx int
	}
	byName := map[string]*acc{}
	order := make([]string, 0)

	for i, tx := range valid {
		a, ok := byName[tx.ProductName]
		if !ok {
			a = &acc{stat: ProductStat{Name: tx.ProductName}, firstIdx: i}
			byName[tx.ProductName] = a
			order = append(order, tx.ProductName)
		}
		a.stat.Quantity += tx.Quantity
		a.stat.Revenue += tx.Amount()
	}

	all := make([]*acc, 0, len(order))
	for _, name := range order {
		all = append(all, byName[name])
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].stat.Quantity != all[j].stat.Quantity {
			return all[i].stat.Quantity > all[j].stat.Quantity
		}
		return all[i].firstIdx < all[j].firstIdx
	})
	for _, a := range all {
		if len(top) < topN {
			top = append(top, a.stat)
		}
	}

	lowAccs := make([]*acc, 0)
	for _, a := range all {
		if a.stat.Quantity < lowQtyThreshold {
			lowAccs = append(lowAccs, a)
		}
	}
	sort.SliceStable(lowAccs, func(i, j int) bool {
		if lowAccs[i].stat.Quantity != lowAccs[j].stat.Quantity {
			return lowAccs[i].stat.Quantity < lowAccs[j].stat.Quantity
		}
		return lowAccs[i].firstIdx < lowAccs[j].firstIdx
	})
	for _, a := range lowAccs {
		low = append(low, a.stat)
	}
	return top, low
}

func buildCustomers(valid []internal.Transaction, topN int) []CustomerStat {
	type acc struct {
		stat     CustomerStat
		products map[string]struct{}
		firstIdx int
	}
	byID := map[string]*acc{}
	order := make([]string, 0)

	for i, tx := range valid {
		a, ok := byID[tx.CustomerID]
		if !ok {
			a = &acc{stat: CustomerStat{CustomerID: tx.CustomerID}, products: map[string]struct{}{}, firstIdx: i}
			byID[tx.CustomerID] = a
			order = append(order, tx.CustomerID)
		}
		a.stat.Spent += tx.Amount()
		a.stat.Orders++
		a.products[tx.ProductName] = struct{}{}
	}

	all := make([]*acc, 0, len(order))
	for _, id := range order {
		a := byID[id]
		if a.stat.Orders > 0 {
			a.stat.AvgOrder = a.stat.Spent / float64(a.stat.Orders)
		}
		a.stat.Products = make([]string, 0, len(a.products))
		for p := range a.products {
			a.stat.Products = append(a.stat.Products, p)
		}
		sort.Strings(a.stat.Products)
		all = append(all, a)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].stat.Spent != all[j].stat.Spent {
			return all[i].stat.Spent > all[j].stat.Spent
		}
		return all[i].firstIdx < all[j].firstIdx
	})

	out := make([]CustomerStat, 0, topN)
	for _, a := range all {
		if len(out) == topN {
			break
		}
		out = append(out, a.stat)
	}
	return out
}

func buildDaily(valid []internal.Transaction) []DayStat {
	type acc struct {
		stat      DayStat
		customers map[string]struct{}
	}
	byDate := map[string]*acc{}

	for _, tx := range valid {
		a, ok := byDate[tx.Date]
		if !ok {
			a = &acc{stat: DayStat{Date: tx.Date}, customers: map[string]struct{}{}}
			byDate[tx.Date] = a
		}
		a.stat.Revenue += tx.Amount()
		a.stat.Transactions++
		a.customers[tx.CustomerID] = struct{}{}
	}

	out := make([]DayStat, 0, len(byDate))
	for _, a := range byDate {
		a.stat.Customers = len(a.customers)
		out = append(out, a.stat)
	}
	// ISO dates sort chronologically as strings.
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func buildPeak(valid []internal.Transaction) (PeakDay, bool) {
	type acc struct {
		revenue float64
		count   int
	}
	byDate := map[string]*acc{}
	order := make([]string, 0)

	for _, tx := range valid {
		a, ok := byDate[tx.Date]
		if !ok {
			a = &acc{}
			byDate[tx.Date] = a
			order = append(order, tx.Date)
		}
		a.revenue += tx.Amount()
		a.count++
	}
	if len(order) == 0 {
		return PeakDay{}, false
	}

	// Strict > keeps the first-encountered day on revenue ties.
	peak := PeakDay{Date: order[0], Revenue: byDate[order[0]].revenue, Transactions: byDate[order[0]].count}
	for _, date := range order[1:] {
		a := byDate[date]
		if a.revenue > peak.Revenue {
			peak = PeakDay{Date: date, Revenue: a.revenue, Transactions: a.count}
		}
	}
	return peak, true
}

func buildEnrichment(enriched []internal.EnrichedTransaction) Enrichment {
	e := Enrichment{Total: len(enriched)}
	unmatched := map[string]struct{}{}
	for _, tx := range enriched {
		if tx.APIMatch {
			e.Matched++
		} else {
			unmatched[tx.ProductID] = struct{}{}
		}
	}
	if e.Total > 0 {
		e.SuccessRate = float64(e.Matched) / float64(e.Total) * 100
	}
	e.Unmatched = make([]string, 0, len(unmatched))
	for id := range unmatched {
		e.Unmatched = append(e.Unmatched, id)
	}
	sort.Strings(e.Unmatched)
	return e
}
