package api

// dashboardHTML is the embedded single-page dashboard. It listens on the
// SSE stream and renders inventory, balance history, the email log, and
// the activity feed.
const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Vending Simulation</title>
    <style>
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: #f8fafc;
            color: #1e293b;
            padding: 24px;
            height: 100vh;
            overflow: hidden;
        }
        .header {
            display: flex;
            justify-content: space-between;
            align-items: center;
            margin-bottom: 24px;
            padding-bottom: 16px;
            border-bottom: 1px solid #e2e8f0;
        }
        .company-name { font-size: 22px; font-weight: 600; color: #0f172a; }
        .day-balance { display: flex; gap: 24px; font-size: 16px; color: #64748b; }
        .day-balance span { color: #0f172a; font-weight: 500; }
        .balance { color: #059669 !important; font-weight: 600 !important; }
        .grid {
            display: grid;
            grid-template-columns: 1fr 1fr;
            grid-template-rows: 1fr 1fr;
            gap: 20px;
            height: calc(100vh - 100px);
        }
        .panel {
            background: #ffffff;
            border-radius: 12px;
            padding: 20px;
            display: flex;
            flex-direction: column;
            overflow: hidden;
            border: 1px solid #e2e8f0;
        }
        .panel-title {
            font-size: 13px;
            font-weight: 600;
            text-transform: uppercase;
            color: #64748b;
            margin-bottom: 16px;
            letter-spacing: 0.5px;
        }
        .inventory-grid {
            display: grid;
            grid-template-columns: repeat(3, 1fr);
            gap: 12px;
            flex: 1;
            align-content: center;
        }
        .product-card {
            background: #f8fafc;
            border-radius: 10px;
            padding: 16px;
            text-align: center;
            border: 1px solid #e2e8f0;
        }
        .product-name { font-weight: 600; margin-bottom: 8px; color: #334155; font-size: 14px; }
        .product-stock { font-size: 32px; font-weight: 700; margin: 8px 0; }
        .product-stock.low { color: #dc2626; }
        .product-stock.ok { color: #d97706; }
        .product-stock.good { color: #059669; }
        .product-price { color: #64748b; font-size: 14px; }
        .chart-container {
            flex: 1;
            display: flex;
            align-items: flex-end;
            gap: 3px;
            min-height: 0;
            background: #f8fafc;
            border-radius: 8px;
            padding: 16px;
        }
        .chart-bar {
            flex: 1;
            background: #3b82f6;
            border-radius: 3px 3px 0 0;
            min-height: 4px;
            transition: height 0.3s;
        }
        .email-list { flex: 1; overflow-y: auto; min-height: 0; }
        .email {
            padding: 12px;
            margin-bottom: 8px;
            background: #f8fafc;
            border-radius: 8px;
            font-size: 13px;
            line-height: 1.5;
            border: 1px solid #e2e8f0;
        }
        .email.outgoing { border-left: 3px solid #3b82f6; }
        .email.incoming { border-left: 3px solid #059669; }
        .email-header { color: #64748b; margin-bottom: 6px; font-weight: 500; font-size: 12px; }
        .activity-list { font-size: 13px; flex: 1; overflow-y: auto; min-height: 0; }
        .activity-item { padding: 10px 0; border-bottom: 1px solid #f1f5f9; color: #475569; }
        .sale { color: #059669; font-weight: 500; }
        .restock { color: #3b82f6; font-weight: 500; }
        .warning { color: #d97706; font-weight: 500; }
        .thinking {
            display: flex;
            align-items: center;
            gap: 10px;
            padding: 12px 16px;
            background: #eff6ff;
            border-radius: 8px;
            margin-top: 12px;
            border: 1px solid #bfdbfe;
        }
        .thinking-dot {
            width: 8px;
            height: 8px;
            background: #3b82f6;
            border-radius: 50%;
            animation: pulse 1s infinite;
        }
        @keyframes pulse {
            0%, 100% { opacity: 0.3; }
            50% { opacity: 1; }
        }
        .status-complete { text-align: center; padding: 40px; font-size: 24px; color: #0f172a; }
        .final-balance { font-size: 48px; color: #059669; font-weight: 700; margin: 20px 0; }
    </style>
</head>
<body>
    <div class="header">
        <div class="company-name" id="companyName">Loading...</div>
        <div class="day-balance">
            <div>Day <span id="currentDay">1</span> / <span id="maxDays">30</span></div>
            <div class="balance">$<span id="balance">500.00</span></div>
        </div>
    </div>

    <div class="grid">
        <div class="panel">
            <div class="panel-title">Inventory</div>
            <div class="inventory-grid" id="inventory"></div>
        </div>
        <div class="panel">
            <div class="panel-title">Balance History</div>
            <div class="chart-container" id="balanceChart"></div>
        </div>
        <div class="panel">
            <div class="panel-title">Email Log</div>
            <div class="email-list" id="emailList"></div>
        </div>
        <div class="panel">
            <div class="panel-title">Activity</div>
            <div class="activity-list" id="activityList"></div>
            <div class="thinking" id="thinking" style="display: none;">
                <div class="thinking-dot"></div>
                <div id="thinkingText">Agent is thinking...</div>
            </div>
        </div>
    </div>

    <div id="complete" style="display: none;" class="status-complete">
        <div>Simulation Complete!</div>
        <div class="final-balance">$<span id="finalBalance">0</span></div>
        <div>Final Balance</div>
    </div>

    <script>
        var balanceHistory = [];

        var es = new EventSource('/api/v1/stream');
        es.onmessage = function (event) {
            var data = JSON.parse(event.data);

            if (data.type === 'init') {
                document.getElementById('companyName').textContent = data.company_name;
            }
            else if (data.type === 'state') {
                updateState(data.state);
            }
            else if (data.type === 'activity') {
                addActivity(data.message, data.style || '');
            }
            else if (data.type === 'thinking') {
                document.getElementById('thinking').style.display = data.show ? 'flex' : 'none';
                if (data.text) document.getElementById('thinkingText').textContent = data.text;
            }
            else if (data.type === 'complete') {
                document.querySelector('.grid').style.display = 'none';
                document.getElementById('complete').style.display = 'block';
                document.getElementById('finalBalance').textContent = data.balance.toFixed(2);
                es.close();
            }
        };

        function updateState(state) {
            document.getElementById('currentDay').textContent = state.day;
            document.getElementById('maxDays').textContent = state.max_days;
            document.getElementById('balance').textContent = state.balance.toFixed(2);

            var invEl = document.getElementById('inventory');
            invEl.innerHTML = Object.keys(state.products).sort().map(function (name) {
                var p = state.products[name];
                var stockClass = p.stock <= 5 ? 'low' : p.stock <= 15 ? 'ok' : 'good';
                return '<div class="product-card">' +
                    '<div class="product-name">' + name + '</div>' +
                    '<div class="product-stock ' + stockClass + '">' + p.stock + '</div>' +
                    '<div class="product-price">$' + p.price.toFixed(2) + '</div>' +
                    '</div>';
            }).join('');

            balanceHistory.push(state.balance);
            if (balanceHistory.length > 30) balanceHistory.shift();
            var maxBalance = Math.max.apply(null, balanceHistory.concat([100]));
            var chartEl = document.getElementById('balanceChart');
            chartEl.innerHTML = balanceHistory.map(function (b) {
                var height = (b / maxBalance) * 180;
                var color = b >= 500 ? '#059669' : '#dc2626';
                return '<div class="chart-bar" style="height: ' + height + 'px; background: ' + color + '"></div>';
            }).join('');

            var emailEl = document.getElementById('emailList');
            emailEl.innerHTML = state.emails.slice().reverse().map(function (e) {
                var dir = e.direction === 'out' ? 'outgoing' : 'incoming';
                var header = (e.direction === 'out' ? 'To: ' : 'From: ') + e.counterpart;
                return '<div class="email ' + dir + '">' +
                    '<div class="email-header">' + header + ' - ' + e.subject + '</div>' +
                    '<div>' + e.body + '</div>' +
                    '</div>';
            }).join('');
        }

        function addActivity(message, style) {
            var el = document.getElementById('activityList');
            var item = document.createElement('div');
            item.className = 'activity-item ' + style;
            item.textContent = message;
            el.insertBefore(item, el.firstChild);
            if (el.children.length > 20) el.removeChild(el.lastChild);
        }
    </script>
</body>
</html>`
