package alpha

import "alphapanel/internal/panel"

// The first 101 factors follow the published WorldQuant formulas. Each
// function's comment is the formula it computes; bodies are literal
// operator compositions of that formula.

// rank(ts_argmax(signedpower(((returns < 0) ? stddev(returns, 20) : close), 2), 5)) - 0.5
func alpha001(p *panel.Panel) *panel.Matrix {
	inner := where(ltS(p.Returns(), 0), stdDev(p.Returns(), 20), p.Close())
	return subS(rank(tsArgMax(signedPower(mul(inner, inner), 1), 5)), 0.5)
}

// -1 * correlation(rank(delta(log(volume), 2)), rank((close - open) / open), 6)
func alpha002(p *panel.Panel) *panel.Matrix {
	return neg(corr(
		rank(delta(logOf(p.Volume()), 2)),
		rank(div(sub(p.Close(), p.Open()), p.Open())),
		6))
}

// -1 * correlation(rank(open), rank(volume), 10)
func alpha003(p *panel.Panel) *panel.Matrix {
	return neg(corr(rank(p.Open()), rank(p.Volume()), 10))
}

// -1 * ts_rank(rank(low), 9)
func alpha004(p *panel.Panel) *panel.Matrix {
	return neg(tsRank(rank(p.Low()), 9))
}

// rank(open - sum(vwap, 10) / 10) * (-1 * abs(rank(close - vwap)))
func alpha005(p *panel.Panel) *panel.Matrix {
	return mul(
		rank(sub(p.Open(), divS(tsSum(p.VWAP(), 10), 10))),
		neg(abs(rank(sub(p.Close(), p.VWAP())))))
}

// -1 * correlation(open, volume, 10)
func alpha006(p *panel.Panel) *panel.Matrix {
	return neg(corr(p.Open(), p.Volume(), 10))
}

// (adv20 < volume) ? (-1 * ts_rank(abs(delta(close, 7)), 60)) * sign(delta(close, 7)) : -1
func alpha007(p *panel.Panel) *panel.Matrix {
	dc := delta(p.Close(), 7)
	a := mul(neg(tsRank(abs(dc), 60)), sign(dc))
	return where(ge(adv(p, 20), p.Volume()), constOf(p, -1), a)
}

// -1 * rank((sum(open, 5) * sum(returns, 5)) - delay(sum(open, 5) * sum(returns, 5), 10))
func alpha008(p *panel.Panel) *panel.Matrix {
	c := mul(tsSum(p.Open(), 5), tsSum(p.Returns(), 5))
	return neg(rank(sub(c, delay(c, 10))))
}

// (0 < ts_min(delta(close, 1), 5)) ? delta(close, 1)
//   : ((ts_max(delta(close, 1), 5) < 0) ? delta(close, 1) : -1 * delta(close, 1))
func alpha009(p *panel.Panel) *panel.Matrix {
	dc := delta(p.Close(), 1)
	c := or(gtS(tsMin(dc, 5), 0), ltS(tsMax(dc, 5), 0))
	return where(c, dc, neg(dc))
}

// rank(alpha009 inner with window 4)
func alpha010(p *panel.Panel) *panel.Matrix {
	dc := delta(p.Close(), 1)
	c := or(gtS(tsMin(dc, 4), 0), ltS(tsMax(dc, 4), 0))
	return rank(where(c, dc, neg(dc)))
}

// (rank(ts_max(vwap - close, 3)) + rank(ts_min(vwap - close, 3))) * rank(delta(volume, 3))
func alpha011(p *panel.Panel) *panel.Matrix {
	d := sub(p.VWAP(), p.Close())
	return mul(add(rank(tsMax(d, 3)), rank(tsMin(d, 3))), rank(delta(p.Volume(), 3)))
}

// sign(delta(volume, 1)) * (-1 * delta(close, 1))
func alpha012(p *panel.Panel) *panel.Matrix {
	return mul(sign(delta(p.Volume(), 1)), neg(delta(p.Close(), 1)))
}

// -1 * rank(covariance(rank(close), rank(volume), 5))
func alpha013(p *panel.Panel) *panel.Matrix {
	return neg(rank(cov(rank(p.Close()), rank(p.Volume()), 5)))
}

// (-1 * rank(delta(returns, 3))) * correlation(open, volume, 10)
func alpha014(p *panel.Panel) *panel.Matrix {
	return mul(neg(rank(delta(p.Returns(), 3))), corr(p.Open(), p.Volume(), 10))
}

// -1 * sum(rank(correlation(rank(high), rank(volume), 3)), 3)
func alpha015(p *panel.Panel) *panel.Matrix {
	return neg(tsSum(rank(corr(rank(p.High()), rank(p.Volume()), 3)), 3))
}

// -1 * rank(covariance(rank(high), rank(volume), 5))
func alpha016(p *panel.Panel) *panel.Matrix {
	return neg(rank(cov(rank(p.High()), rank(p.Volume()), 5)))
}

// (((-1 * rank(ts_rank(close, 10))) * rank(delta(delta(close, 1), 1))) * rank(ts_rank(volume / adv20, 5)))
func alpha017(p *panel.Panel) *panel.Matrix {
	return neg(mul(
		mul(rank(tsRank(p.Close(), 10)), rank(delta(delta(p.Close(), 1), 1))),
		rank(tsRank(div(p.Volume(), adv(p, 20)), 5))))
}

// -1 * rank((stddev(abs(close - open), 5) + (close - open)) + correlation(close, open, 10))
func alpha018(p *panel.Panel) *panel.Matrix {
	co := sub(p.Close(), p.Open())
	return neg(rank(add(add(stdDev(abs(co), 5), co), corr(p.Close(), p.Open(), 10))))
}

// (-1 * sign((close - delay(close, 7)) + delta(close, 7))) * (1 + rank(1 + sum(returns, 250)))
func alpha019(p *panel.Panel) *panel.Matrix {
	return mul(
		neg(sign(add(sub(p.Close(), delay(p.Close(), 7)), delta(p.Close(), 7)))),
		addS(rank(addS(tsSum(p.Returns(), 250), 1)), 1))
}

// ((-1 * rank(open - delay(high, 1))) * rank(open - delay(close, 1))) * rank(open - delay(low, 1))
func alpha020(p *panel.Panel) *panel.Matrix {
	return neg(mul(
		mul(rank(sub(p.Open(), delay(p.High(), 1))), rank(sub(p.Open(), delay(p.Close(), 1)))),
		rank(sub(p.Open(), delay(p.Low(), 1)))))
}

// ((sum(close, 8)/8 + stddev(close, 8)) < sum(close, 2)/2) ? -1
//   : ((sum(close, 2)/2 < sum(close, 8)/8 - stddev(close, 8)) ? 1
//   : ((1 <= volume/adv20) ? 1 : -1))
func alpha021(p *panel.Panel) *panel.Matrix {
	ma8 := mean(p.Close(), 8)
	sd8 := stdDev(p.Close(), 8)
	ma2 := mean(p.Close(), 2)
	c1 := lt(add(ma8, sd8), ma2)
	c2 := lt(ma2, sub(ma8, sd8))
	c3 := leS(div(adv(p, 20), p.Volume()), 1)
	return whereS(or(c1, and(not(c1), and(not(c2), not(c3)))), -1, 1)
}

// -1 * (delta(correlation(high, volume, 5), 5) * rank(stddev(close, 20)))
func alpha022(p *panel.Panel) *panel.Matrix {
	return neg(mul(delta(corr(p.High(), p.Volume(), 5), 5), rank(stdDev(p.Close(), 20))))
}

// (sum(high, 20)/20 < high) ? -1 * delta(high, 2) : 0
func alpha023(p *panel.Panel) *panel.Matrix {
	return where(lt(mean(p.High(), 20), p.High()), neg(delta(p.High(), 2)), constOf(p, 0))
}

// (delta(sum(close, 100)/100, 100) / delay(close, 100) <= 0.05)
//   ? -1 * (close - ts_min(close, 100)) : -1 * delta(close, 3)
func alpha024(p *panel.Panel) *panel.Matrix {
	ratio := div(delta(mean(p.Close(), 100), 100), delay(p.Close(), 100))
	return where(leS(ratio, 0.05),
		neg(sub(p.Close(), tsMin(p.Close(), 100))),
		neg(delta(p.Close(), 3)))
}

// rank((((-1 * returns) * adv20) * vwap) * (high - close))
func alpha025(p *panel.Panel) *panel.Matrix {
	return rank(mul(mul(mul(neg(p.Returns()), adv(p, 20)), p.VWAP()), sub(p.High(), p.Close())))
}

// -1 * ts_max(correlation(ts_rank(volume, 5), ts_rank(high, 5), 5), 3)
func alpha026(p *panel.Panel) *panel.Matrix {
	return neg(tsMax(corr(tsRank(p.Volume(), 5), tsRank(p.High(), 5), 5), 3))
}

// (0.5 < rank(sum(correlation(rank(volume), rank(vwap), 6), 2) / 2)) ? -1 : 1
func alpha027(p *panel.Panel) *panel.Matrix {
	r := rank(divS(mean(corr(rank(p.Volume()), rank(p.VWAP()), 6), 2), 2))
	return fill(sign(mulS(subS(r, 0.5), -2)), 1)
}

// scale((correlation(adv20, low, 5) + (high + low)/2) - close)
func alpha028(p *panel.Panel) *panel.Matrix {
	return scale(sub(
		add(corr(adv(p, 20), p.Low(), 5), divS(add(p.High(), p.Low()), 2)),
		p.Close()))
}

// min(product(rank(rank(scale(log(sum(ts_min(rank(rank(-1 * rank(delta(close - 1, 5)))), 2), 1))))), 1), 5)
//   + ts_rank(delay(-1 * returns, 6), 5)
func alpha029(p *panel.Panel) *panel.Matrix {
	inner := neg(rank(delta(subS(p.Close(), 1), 5)))
	m := tsMin(rank(rank(inner)), 2)
	s := scale(tsSum(logOf(m), 1))
	p1 := tsMin(product(rank(rank(s)), 1), 5)
	return add(p1, tsRank(delay(neg(p.Returns()), 6), 5))
}

// ((1 - rank(sign(delta(close,1)) + sign(delay(delta(close,1),1)) + sign(delay(delta(close,1),2))))
//   * sum(volume, 5)) / sum(volume, 20)
func alpha030(p *panel.Panel) *panel.Matrix {
	dc := delta(p.Close(), 1)
	inner := add(add(sign(dc), sign(delay(dc, 1))), sign(delay(dc, 2)))
	return div(mul(subSM(1, rank(inner)), tsSum(p.Volume(), 5)), tsSum(p.Volume(), 20))
}

// rank(rank(rank(decay_linear(-1 * rank(rank(delta(close, 10))), 10))))
//   + rank(-1 * delta(close, 3)) + sign(scale(correlation(adv20, low, 12)))
func alpha031(p *panel.Panel) *panel.Matrix {
	p1 := rank(rank(rank(decayLinear(neg(rank(rank(delta(p.Close(), 10)))), 10))))
	p2 := rank(neg(delta(p.Close(), 3)))
	p3 := sign(scale(corr(adv(p, 20), p.Low(), 12)))
	return add(add(p1, p2), p3)
}

// scale(sum(close, 7)/7 - close) + 20 * scale(correlation(vwap, delay(close, 5), 230))
func alpha032(p *panel.Panel) *panel.Matrix {
	return add(
		scale(sub(divS(mean(p.Close(), 7), 7), p.Close())),
		mulS(scale(corr(p.VWAP(), delay(p.Close(), 5), 230)), 20))
}

// rank(-1 * (1 - open/close))
func alpha033(p *panel.Panel) *panel.Matrix {
	return rank(addS(div(p.Open(), p.Close()), -1))
}

// rank((1 - rank(stddev(returns, 2) / stddev(returns, 5))) + (1 - rank(delta(close, 1))))
func alpha034(p *panel.Panel) *panel.Matrix {
	inner := fill(div(stdDev(p.Returns(), 2), stdDev(p.Returns(), 5)), 1)
	return rank(subSM(2, add(rank(inner), rank(delta(p.Close(), 1)))))
}

// (ts_rank(volume, 32) * (1 - ts_rank(close + high - low, 16))) * (1 - ts_rank(returns, 32))
func alpha035(p *panel.Panel) *panel.Matrix {
	return mul(
		mul(tsRank(p.Volume(), 32), subSM(1, tsRank(sub(add(p.Close(), p.High()), p.Low()), 16))),
		subSM(1, tsRank(p.Returns(), 32)))
}

// 2.21*rank(correlation(close - open, delay(volume, 1), 15)) + 0.7*rank(open - close)
//   + 0.73*rank(ts_rank(delay(-1 * returns, 6), 5)) + rank(abs(correlation(vwap, adv20, 6)))
//   + 0.6*rank((sum(close, 200)/200 - open) * (close - open))
func alpha036(p *panel.Panel) *panel.Matrix {
	t1 := mulS(rank(corr(sub(p.Close(), p.Open()), delay(p.Volume(), 1), 15)), 2.21)
	t2 := mulS(rank(sub(p.Open(), p.Close())), 0.7)
	t3 := mulS(rank(tsRank(delay(neg(p.Returns()), 6), 5)), 0.73)
	t4 := rank(abs(corr(p.VWAP(), adv(p, 20), 6)))
	t5 := mulS(rank(mul(sub(divS(mean(p.Close(), 200), 200), p.Open()), sub(p.Close(), p.Open()))), 0.6)
	return add(add(add(add(t1, t2), t3), t4), t5)
}

// rank(correlation(delay(open - close, 1), close, 200)) + rank(open - close)
func alpha037(p *panel.Panel) *panel.Matrix {
	oc := sub(p.Open(), p.Close())
	return add(rank(corr(delay(oc, 1), p.Close(), 200)), rank(oc))
}

// (-1 * rank(ts_rank(open, 10))) * rank(close / open)
func alpha038(p *panel.Panel) *panel.Matrix {
	return mul(neg(rank(tsRank(p.Open(), 10))), rank(fill(div(p.Close(), p.Open()), 1)))
}

// (-1 * rank(delta(close, 7) * (1 - rank(decay_linear(volume / adv20, 9)))))
//   * (1 + rank(mean(returns, 250)))
func alpha039(p *panel.Panel) *panel.Matrix {
	return mul(
		neg(rank(mul(delta(p.Close(), 7), subSM(1, rank(decayLinear(div(p.Volume(), adv(p, 20)), 9)))))),
		addS(rank(mean(p.Returns(), 250)), 1))
}

// (-1 * rank(stddev(high, 10))) * correlation(high, volume, 10)
func alpha040(p *panel.Panel) *panel.Matrix {
	return mul(neg(rank(stdDev(p.High(), 10))), corr(p.High(), p.Volume(), 10))
}

// (high * low)^0.5 - vwap
func alpha041(p *panel.Panel) *panel.Matrix {
	return sub(pow(mul(p.High(), p.Low()), 0.5), p.VWAP())
}

// rank(vwap - close) / rank(vwap + close)
func alpha042(p *panel.Panel) *panel.Matrix {
	return div(rank(sub(p.VWAP(), p.Close())), rank(add(p.VWAP(), p.Close())))
}

// ts_rank(volume / adv20, 20) * ts_rank(-1 * delta(close, 7), 8)
func alpha043(p *panel.Panel) *panel.Matrix {
	return mul(tsRank(div(p.Volume(), adv(p, 20)), 20), tsRank(neg(delta(p.Close(), 7)), 8))
}

// -1 * correlation(high, rank(volume), 5)
func alpha044(p *panel.Panel) *panel.Matrix {
	return neg(corr(p.High(), rank(p.Volume()), 5))
}

// -1 * ((rank(sum(delay(close, 5), 20)/20) * correlation(close, volume, 2))
//   * rank(correlation(sum(close, 5), sum(close, 20), 2)))
func alpha045(p *panel.Panel) *panel.Matrix {
	return neg(mul(
		mul(rank(mean(delay(p.Close(), 5), 20)), corr(p.Close(), p.Volume(), 2)),
		rank(corr(tsSum(p.Close(), 5), tsSum(p.Close(), 20), 2))))
}

// momentum gap: (0.25 < inner) ? -1 : (inner < 0 ? 1 : -1 * delta(close, 1))
// where inner = (delay(close,20)-delay(close,10))/10 - (delay(close,10)-close)/10
func alpha046(p *panel.Panel) *panel.Matrix {
	inner := sub(
		divS(sub(delay(p.Close(), 20), delay(p.Close(), 10)), 10),
		divS(sub(delay(p.Close(), 10), p.Close()), 10))
	return where(gtS(inner, 0.25), constOf(p, -1),
		where(ltS(inner, 0), constOf(p, 1), neg(delta(p.Close(), 1))))
}

// ((rank(1/close) * volume / adv20) * (high * rank(high - close) / (sum(high, 5)/5)))
//   - rank(vwap - delay(vwap, 5))
func alpha047(p *panel.Panel) *panel.Matrix {
	t1 := div(mul(rank(divSM(1, p.Close())), p.Volume()), adv(p, 20))
	t2 := div(mul(p.High(), rank(sub(p.High(), p.Close()))), divS(mean(p.High(), 5), 5))
	return sub(mul(t1, t2), rank(sub(p.VWAP(), delay(p.VWAP(), 5))))
}

// -1 * (rank(sign(close - delay(close,1)) + sign(delay(close,1) - delay(close,2))
//   + sign(delay(close,2) - delay(close,3))) * sum(volume, 5)) / sum(volume, 20)
func alpha048(p *panel.Panel) *panel.Matrix {
	inner := add(add(
		sign(sub(p.Close(), delay(p.Close(), 1))),
		sign(sub(delay(p.Close(), 1), delay(p.Close(), 2)))),
		sign(sub(delay(p.Close(), 2), delay(p.Close(), 3))))
	return div(neg(mul(rank(inner), tsSum(p.Volume(), 5))), tsSum(p.Volume(), 20))
}

// (inner < -0.1) ? 1 : -1 * delta(close, 1), inner as in alpha046
func alpha049(p *panel.Panel) *panel.Matrix {
	inner := sub(
		divS(sub(delay(p.Close(), 20), delay(p.Close(), 10)), 10),
		divS(sub(delay(p.Close(), 10), p.Close()), 10))
	return where(ltS(inner, -0.1), constOf(p, 1), neg(delta(p.Close(), 1)))
}

// -1 * ts_max(rank(correlation(rank(volume), rank(vwap), 5)), 5)
func alpha050(p *panel.Panel) *panel.Matrix {
	return neg(tsMax(rank(corr(rank(p.Volume()), rank(p.VWAP()), 5)), 5))
}

// (inner < -0.05) ? 1 : -1 * delta(close, 1), inner as in alpha046
func alpha051(p *panel.Panel) *panel.Matrix {
	inner := sub(
		divS(sub(delay(p.Close(), 20), delay(p.Close(), 10)), 10),
		divS(sub(delay(p.Close(), 10), p.Close()), 10))
	return where(ltS(inner, -0.05), constOf(p, 1), neg(delta(p.Close(), 1)))
}

// ((-1 * delta(ts_min(low, 5), 5)) * rank((sum(returns, 240) - sum(returns, 20))/220))
//   * ts_rank(volume, 5)
func alpha052(p *panel.Panel) *panel.Matrix {
	return mul(mul(
		neg(delta(tsMin(p.Low(), 5), 5)),
		rank(divS(sub(tsSum(p.Returns(), 240), tsSum(p.Returns(), 20)), 220))),
		tsRank(p.Volume(), 5))
}

// -1 * delta(((close - low) - (high - close)) / (close - low), 9)
func alpha053(p *panel.Panel) *panel.Matrix {
	inner := replaceZero(sub(p.Close(), p.Low()), 0.0001)
	return neg(delta(div(sub(sub(p.Close(), p.Low()), sub(p.High(), p.Close())), inner), 9))
}

// (-1 * (low - close) * open^5) / ((low - high) * close^5)
func alpha054(p *panel.Panel) *panel.Matrix {
	inner := replaceZero(sub(p.Low(), p.High()), -0.0001)
	return div(
		mul(neg(sub(p.Low(), p.Close())), pow(p.Open(), 5)),
		mul(inner, pow(p.Close(), 5)))
}

// -1 * correlation(rank((close - ts_min(low, 12)) / (ts_max(high, 12) - ts_min(low, 12))), rank(volume), 6)
func alpha055(p *panel.Panel) *panel.Matrix {
	divisor := replaceZero(sub(tsMax(p.High(), 12), tsMin(p.Low(), 12)), 0.0001)
	inner := div(sub(p.Close(), tsMin(p.Low(), 12)), divisor)
	return neg(corr(rank(inner), rank(p.Volume()), 6))
}

// rank(open - ts_min(open, 12)) < rank(rank(correlation(sum((high + low)/2, 19), sum(mean(volume, 40), 19), 13))^5)
func alpha056(p *panel.Panel) *panel.Matrix {
	a := rank(sub(p.Open(), tsMin(p.Open(), 12)))
	b := rank(pow(rank(corr(
		tsSum(divS(add(p.High(), p.Low()), 2), 19),
		tsSum(mean(p.Volume(), 40), 19), 13)), 5))
	return lt(a, b)
}

// 0 - (close - vwap) / decay_linear(rank(ts_argmax(close, 30)), 2)
func alpha057(p *panel.Panel) *panel.Matrix {
	return neg(div(sub(p.Close(), p.VWAP()), decayLinear(rank(tsArgMax(p.Close(), 30)), 2)))
}

// count(close > delay(close, 1), 20) / 20 * 100
func alpha058(p *panel.Panel) *panel.Matrix {
	return mulS(divS(count(gt(p.Close(), delay(p.Close(), 1)), 20), 20), 100)
}

// sum((close = delay(close,1) ? 0 : close - (close > delay(close,1)
//   ? min(low, delay(close,1)) : max(high, delay(close,1)))), 20)
func alpha059(p *panel.Panel) *panel.Matrix {
	d := delay(p.Close(), 1)
	part := where(eq(p.Close(), d), constOf(p, 0),
		where(gt(p.Close(), d), sub(p.Close(), min2(p.Low(), d)),
			where(lt(p.Close(), d), sub(p.Close(), max2(p.High(), d)), nanOf(p))))
	return tsSum(part, 20)
}

// 0 - (2 * scale(rank(((close - low) - (high - close)) / (high - low) * volume))
//   - scale(rank(ts_argmax(close, 10))))
func alpha060(p *panel.Panel) *panel.Matrix {
	divisor := replaceZero(sub(p.High(), p.Low()), 0.0001)
	inner := div(mul(sub(sub(p.Close(), p.Low()), sub(p.High(), p.Close())), p.Volume()), divisor)
	return neg(sub(mulS(scale(rank(inner)), 2), scale(rank(tsArgMax(p.Close(), 10)))))
}

// rank(vwap - ts_min(vwap, 16)) < rank(correlation(vwap, adv180, 18))
func alpha061(p *panel.Panel) *panel.Matrix {
	return lt(
		rank(sub(p.VWAP(), tsMin(p.VWAP(), 16))),
		rank(corr(p.VWAP(), adv(p, 180), 18)))
}

// (rank(correlation(vwap, mean(adv20, 22), 10))
//   < rank((rank(open) + rank(open)) < (rank((high + low)/2) + rank(high)))) * -1
func alpha062(p *panel.Panel) *panel.Matrix {
	inner := lt(
		add(rank(p.Open()), rank(p.Open())),
		add(rank(divS(add(p.High(), p.Low()), 2)), rank(p.High())))
	return neg(lt(rank(corr(p.VWAP(), mean(adv(p, 20), 22), 10)), rank(inner)))
}

// sma(max(close - delay(close, 1), 0), 6, 1) / sma(abs(close - delay(close, 1)), 6, 1) * 100
func alpha063(p *panel.Panel) *panel.Matrix {
	dc := sub(p.Close(), delay(p.Close(), 1))
	return mulS(div(ema(maxS(dc, 0), 6, 1), ema(abs(dc), 6, 1)), 100)
}

// (rank(correlation(mean(open*0.178404 + low*(1-0.178404), 13), mean(adv120, 13), 17))
//   < rank(delta(((high + low)/2)*0.178404 + vwap*(1-0.178404), 4))) * -1
func alpha064(p *panel.Panel) *panel.Matrix {
	w := add(mulS(p.Open(), 0.178404), mulS(p.Low(), 1-0.178404))
	return neg(lt(
		rank(corr(mean(w, 13), mean(adv(p, 120), 13), 17)),
		rank(delta(add(mulS(divS(add(p.High(), p.Low()), 2), 0.178404), mulS(p.VWAP(), 1-0.178404)), 4))))
}

// (rank(correlation(open*0.00817205 + vwap*(1-0.00817205), mean(adv60, 9), 6))
//   < rank(open - ts_min(open, 14))) * -1
func alpha065(p *panel.Panel) *panel.Matrix {
	w := add(mulS(p.Open(), 0.00817205), mulS(p.VWAP(), 1-0.00817205))
	return neg(lt(
		rank(corr(w, mean(adv(p, 60), 9), 6)),
		rank(sub(p.Open(), tsMin(p.Open(), 14)))))
}

// (rank(decay_linear(delta(vwap, 4), 7)) + ts_rank(decay_linear((low - vwap)
//   / (open - (high + low)/2), 11), 7)) * -1
func alpha066(p *panel.Panel) *panel.Matrix {
	w := add(mulS(p.Low(), 0.96633), mulS(p.Low(), 1-0.96633))
	inner := div(sub(w, p.VWAP()), sub(p.Open(), divS(add(p.High(), p.Low()), 2)))
	return neg(add(
		rank(decayLinear(delta(p.VWAP(), 4), 7)),
		tsRank(decayLinear(inner, 11), 7)))
}

// sma(max(close - delay(close, 1), 0), 24, 1) / sma(abs(close - delay(close, 1)), 24, 1) * 100
func alpha067(p *panel.Panel) *panel.Matrix {
	dc := sub(p.Close(), delay(p.Close(), 1))
	return mulS(div(ema(maxS(dc, 0), 24, 1), ema(abs(dc), 24, 1)), 100)
}

// sma(((high + low)/2 - (delay(high, 1) + delay(low, 1))/2) * (high - low) / volume, 15, 2)
func alpha068(p *panel.Panel) *panel.Matrix {
	inner := div(mul(
		sub(divS(add(p.High(), p.Low()), 2), divS(add(delay(p.High(), 1), delay(p.Low(), 1)), 2)),
		sub(p.High(), p.Low())),
		p.Volume())
	return ema(inner, 15, 2)
}

// directional movement ratio over DTM/DBM 20-day sums
func alpha069(p *panel.Panel) *panel.Matrix {
	do := delay(p.Open(), 1)
	dtm := where(le(p.Open(), do), constOf(p, 0),
		max2(sub(p.High(), p.Open()), sub(p.Open(), do)))
	dbm := where(ge(p.Open(), do), constOf(p, 0),
		max2(sub(p.Open(), p.Low()), sub(p.Open(), do)))
	st := tsSum(dtm, 20)
	sb := tsSum(dbm, 20)
	return where(gt(st, sb), div(sub(st, sb), st),
		where(eq(st, sb), constOf(p, 0),
			where(lt(st, sb), div(sub(st, sb), sb), nanOf(p))))
}

// stddev(volume, 6)
func alpha070(p *panel.Panel) *panel.Matrix {
	return stdDev(p.Volume(), 6)
}

// max(ts_rank(decay_linear(correlation(ts_rank(close, 3), ts_rank(adv180, 12), 18), 4), 16),
//   ts_rank(decay_linear(rank((low + open) - (vwap + vwap))^2, 16), 4))
func alpha071(p *panel.Panel) *panel.Matrix {
	p1 := tsRank(decayLinear(corr(tsRank(p.Close(), 3), tsRank(adv(p, 180), 12), 18), 4), 16)
	p2 := tsRank(decayLinear(pow(rank(sub(add(p.Low(), p.Open()), add(p.VWAP(), p.VWAP()))), 2), 16), 4)
	return max2(p1, p2)
}

// rank(decay_linear(correlation((high + low)/2, adv40, 9), 10))
//   / rank(decay_linear(correlation(ts_rank(vwap, 4), ts_rank(volume, 19), 7), 3))
func alpha072(p *panel.Panel) *panel.Matrix {
	return div(
		rank(decayLinear(corr(divS(add(p.High(), p.Low()), 2), adv(p, 40), 9), 10)),
		rank(decayLinear(corr(tsRank(p.VWAP(), 4), tsRank(p.Volume(), 19), 7), 3)))
}

// max(rank(decay_linear(delta(vwap, 5), 3)),
//   ts_rank(decay_linear(-1 * delta(open*0.147155 + low*(1-0.147155), 2) / w, 3), 17)) * -1
func alpha073(p *panel.Panel) *panel.Matrix {
	w := add(mulS(p.Open(), 0.147155), mulS(p.Low(), 1-0.147155))
	p1 := rank(decayLinear(delta(p.VWAP(), 5), 3))
	p2 := tsRank(decayLinear(neg(div(delta(w, 2), w)), 3), 17)
	return neg(max2(p1, p2))
}

// (rank(correlation(close, mean(adv30, 37), 15))
//   < rank(correlation(rank(high*0.0261661 + vwap*(1-0.0261661)), rank(volume), 11))) * -1
func alpha074(p *panel.Panel) *panel.Matrix {
	w := add(mulS(p.High(), 0.0261661), mulS(p.VWAP(), 1-0.0261661))
	return neg(lt(
		rank(corr(p.Close(), mean(adv(p, 30), 37), 15)),
		rank(corr(rank(w), rank(p.Volume()), 11))))
}

// rank(correlation(vwap, volume, 4)) < rank(correlation(rank(low), rank(adv50), 12))
func alpha075(p *panel.Panel) *panel.Matrix {
	return lt(
		rank(corr(p.VWAP(), p.Volume(), 4)),
		rank(corr(rank(p.Low()), rank(adv(p, 50)), 12)))
}

// stddev(abs(close/delay(close, 1) - 1)/volume, 20) / mean(abs(close/delay(close, 1) - 1)/volume, 20)
func alpha076(p *panel.Panel) *panel.Matrix {
	x := div(abs(addS(div(p.Close(), delay(p.Close(), 1)), -1)), p.Volume())
	return div(stdDev(x, 20), mean(x, 20))
}

// min(rank(decay_linear(((high + low)/2 + high) - (vwap + high), 20)),
//   rank(decay_linear(correlation((high + low)/2, adv40, 3), 6)))
func alpha077(p *panel.Panel) *panel.Matrix {
	mid := divS(add(p.High(), p.Low()), 2)
	p1 := rank(decayLinear(sub(add(mid, p.High()), add(p.VWAP(), p.High())), 20))
	p2 := rank(decayLinear(corr(mid, adv(p, 40), 3), 6))
	return min2(p1, p2)
}

// rank(correlation(sum(low*0.352233 + vwap*(1-0.352233), 20), sum(adv40, 20), 7))
//   ^ rank(correlation(rank(vwap), rank(volume), 6))
func alpha078(p *panel.Panel) *panel.Matrix {
	w := add(mulS(p.Low(), 0.352233), mulS(p.VWAP(), 1-0.352233))
	return powM(
		rank(corr(tsSum(w, 20), tsSum(adv(p, 40), 20), 7)),
		rank(corr(rank(p.VWAP()), rank(p.Volume()), 6)))
}

// sma(max(close - delay(close, 1), 0), 12, 1) / sma(abs(close - delay(close, 1)), 12, 1) * 100
func alpha079(p *panel.Panel) *panel.Matrix {
	dc := sub(p.Close(), delay(p.Close(), 1))
	return mulS(div(ema(maxS(dc, 0), 12, 1), ema(abs(dc), 12, 1)), 100)
}

// (volume - delay(volume, 5)) / delay(volume, 5) * 100
func alpha080(p *panel.Panel) *panel.Matrix {
	return mulS(div(sub(p.Volume(), delay(p.Volume(), 5)), delay(p.Volume(), 5)), 100)
}

// (rank(log(product(rank(rank(correlation(vwap, sum(adv10, 50), 8))^4), 15)))
//   < rank(correlation(rank(vwap), rank(volume), 5))) * -1
func alpha081(p *panel.Panel) *panel.Matrix {
	return neg(lt(
		rank(logOf(product(rank(pow(rank(corr(p.VWAP(), tsSum(adv(p, 10), 50), 8)), 4)), 15))),
		rank(corr(rank(p.VWAP()), rank(p.Volume()), 5))))
}

// sma((ts_max(high, 6) - close) / (ts_max(high, 6) - ts_min(low, 6)) * 100, 20, 1)
func alpha082(p *panel.Panel) *panel.Matrix {
	hi := tsMax(p.High(), 6)
	return ema(mulS(div(sub(hi, p.Close()), sub(hi, tsMin(p.Low(), 6))), 100), 20, 1)
}

// (rank(delay((high - low) / (sum(close, 5)/5), 2)) * rank(rank(volume)))
//   / (((high - low) / (sum(close, 5)/5)) / (vwap - close))
func alpha083(p *panel.Panel) *panel.Matrix {
	ratio := div(sub(p.High(), p.Low()), divS(tsSum(p.Close(), 5), 5))
	num := mul(rank(delay(ratio, 2)), rank(rank(p.Volume())))
	return div(num, div(ratio, sub(p.VWAP(), p.Close())))
}

// (ts_rank(vwap - ts_max(vwap, 15), 21)) ^ delta(close, 5)
func alpha084(p *panel.Panel) *panel.Matrix {
	return powM(tsRank(sub(p.VWAP(), tsMax(p.VWAP(), 15)), 21), delta(p.Close(), 5))
}

// rank(correlation(high*0.876703 + close*(1-0.876703), adv30, 10))
//   ^ rank(correlation(ts_rank((high + low)/2, 4), ts_rank(volume, 10), 7))
func alpha085(p *panel.Panel) *panel.Matrix {
	w := add(mulS(p.High(), 0.876703), mulS(p.Close(), 1-0.876703))
	return powM(
		rank(corr(w, adv(p, 30), 10)),
		rank(corr(tsRank(divS(add(p.High(), p.Low()), 2), 4), tsRank(p.Volume(), 10), 7)))
}

// (ts_rank(correlation(close, mean(adv20, 15), 6), 20)
//   < rank((open + close) - (vwap + open)) * 20) * -1
func alpha086(p *panel.Panel) *panel.Matrix {
	return neg(lt(
		tsRank(corr(p.Close(), mean(adv(p, 20), 15), 6), 20),
		mulS(rank(sub(add(p.Open(), p.Close()), add(p.VWAP(), p.Open()))), 20)))
}

// (rank(decay_linear(delta(vwap, 4), 7)) + ts_rank(decay_linear((low - vwap)
//   / (open - (high + low)/2), 11), 7)) * -1
func alpha087(p *panel.Panel) *panel.Matrix {
	w := add(mulS(p.Low(), 0.9), mulS(p.Low(), 0.1))
	inner := div(sub(w, p.VWAP()), sub(p.Open(), divS(add(p.High(), p.Low()), 2)))
	return neg(add(
		rank(decayLinear(delta(p.VWAP(), 4), 7)),
		tsRank(decayLinear(inner, 11), 7)))
}

// min(rank(decay_linear((rank(open) + rank(low)) - (rank(high) + rank(close)), 8)),
//   ts_rank(decay_linear(correlation(ts_rank(close, 8), ts_rank(adv60, 21), 8), 7), 3))
func alpha088(p *panel.Panel) *panel.Matrix {
	p1 := rank(decayLinear(sub(
		add(rank(p.Open()), rank(p.Low())),
		add(rank(p.High()), rank(p.Close()))), 8))
	p2 := tsRank(decayLinear(corr(tsRank(p.Close(), 8), tsRank(adv(p, 60), 21), 8), 7), 3)
	return min2(p1, p2)
}

// 2 * (sma(close, 13, 2) - sma(close, 27, 2) - sma(sma(close, 13, 2) - sma(close, 27, 2), 10, 2))
func alpha089(p *panel.Panel) *panel.Matrix {
	d := sub(ema(p.Close(), 13, 2), ema(p.Close(), 27, 2))
	return mulS(sub(d, ema(d, 10, 2)), 2)
}

// rank(correlation(rank(vwap), rank(volume), 5)) * -1
func alpha090(p *panel.Panel) *panel.Matrix {
	return neg(rank(corr(rank(p.VWAP()), rank(p.Volume()), 5)))
}

// (rank(close - ts_max(close, 5)) * rank(correlation(mean(volume, 40), low, 5))) * -1
func alpha091(p *panel.Panel) *panel.Matrix {
	return neg(mul(
		rank(sub(p.Close(), tsMax(p.Close(), 5))),
		rank(corr(mean(p.Volume(), 40), p.Low(), 5))))
}

// min(ts_rank(decay_linear(((high + low)/2 + close) < (low + open), 15), 19),
//   ts_rank(decay_linear(correlation(rank(low), rank(adv30), 8), 7), 7))
func alpha092(p *panel.Panel) *panel.Matrix {
	c := lt(add(divS(add(p.High(), p.Low()), 2), p.Close()), add(p.Low(), p.Open()))
	p1 := tsRank(decayLinear(c, 15), 19)
	p2 := tsRank(decayLinear(corr(rank(p.Low()), rank(adv(p, 30)), 8), 7), 7)
	return min2(p1, p2)
}

// sum((open >= delay(open, 1) ? 0 : max(open - low, open - delay(open, 1))), 20)
func alpha093(p *panel.Panel) *panel.Matrix {
	do := delay(p.Open(), 1)
	part := where(ge(p.Open(), do), constOf(p, 0),
		max2(sub(p.Open(), p.Low()), sub(p.Open(), do)))
	return tsSum(part, 20)
}

// (rank(vwap - ts_min(vwap, 12))
//   ^ ts_rank(correlation(ts_rank(vwap, 20), ts_rank(adv60, 4), 18), 3)) * -1
func alpha094(p *panel.Panel) *panel.Matrix {
	return neg(powM(
		rank(sub(p.VWAP(), tsMin(p.VWAP(), 12))),
		tsRank(corr(tsRank(p.VWAP(), 20), tsRank(adv(p, 60), 4), 18), 3)))
}

// rank(open - ts_min(open, 12)) * 12
//   < ts_rank(rank(correlation(mean((high + low)/2, 19), mean(adv40, 19), 13))^5, 12)
func alpha095(p *panel.Panel) *panel.Matrix {
	return lt(
		mulS(rank(sub(p.Open(), tsMin(p.Open(), 12))), 12),
		tsRank(pow(rank(corr(
			mean(divS(add(p.High(), p.Low()), 2), 19),
			mean(adv(p, 40), 19), 13)), 5), 12))
}

// max(ts_rank(decay_linear(correlation(rank(vwap), rank(volume), 4), 4), 8),
//   ts_rank(decay_linear(ts_argmax(correlation(ts_rank(close, 7), ts_rank(adv60, 4), 4), 13), 14), 13)) * -1
func alpha096(p *panel.Panel) *panel.Matrix {
	p1 := tsRank(decayLinear(corr(rank(p.VWAP()), rank(p.Volume()), 4), 4), 8)
	p2 := tsRank(decayLinear(tsArgMax(corr(tsRank(p.Close(), 7), tsRank(adv(p, 60), 4), 4), 13), 14), 13)
	return neg(max2(p1, p2))
}

// stddev(volume, 10)
func alpha097(p *panel.Panel) *panel.Matrix {
	return stdDev(p.Volume(), 10)
}

// rank(decay_linear(correlation(vwap, mean(adv5, 26), 5), 7))
//   - rank(decay_linear(ts_rank(ts_argmin(correlation(rank(open), rank(adv15), 21), 9), 7), 8))
func alpha098(p *panel.Panel) *panel.Matrix {
	return sub(
		rank(decayLinear(corr(p.VWAP(), mean(adv(p, 5), 26), 5), 7)),
		rank(decayLinear(tsRank(tsArgMin(corr(rank(p.Open()), rank(adv(p, 15)), 21), 9), 7), 8)))
}

// (rank(correlation(sum((high + low)/2, 20), sum(adv60, 20), 9))
//   < rank(correlation(low, volume, 6))) * -1
func alpha099(p *panel.Panel) *panel.Matrix {
	return neg(lt(
		rank(corr(tsSum(divS(add(p.High(), p.Low()), 2), 20), tsSum(adv(p, 60), 20), 9)),
		rank(corr(p.Low(), p.Volume(), 6))))
}

// stddev(volume, 20)
func alpha100(p *panel.Panel) *panel.Matrix {
	return stdDev(p.Volume(), 20)
}

// (close - open) / ((high - low) + 0.001)
func alpha101(p *panel.Panel) *panel.Matrix {
	return div(sub(p.Close(), p.Open()), addS(sub(p.High(), p.Low()), 0.001))
}
