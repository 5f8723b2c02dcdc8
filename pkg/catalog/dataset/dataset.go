// Package dataset embeds the curated event catalogue shipped with
// percal: historical facts from 1500 onward, milestones of the 2010s,
// and forecasts made in mid-2020. The future predictions reflect the
// perspective and knowledge available in June 2020.
package dataset

import "github.com/percal/percal/pkg/catalog"

// Raw returns the builtin catalogue data. Callers must treat it as
// read-only; catalog.New copies everything into its own index.
func Raw() catalog.RawData {
	return raw
}

// New builds a catalogue from the builtin data.
func New() (*catalog.Catalog, error) {
	return catalog.New(raw)
}

func ev(date, title, description string) catalog.RawEvent {
	return catalog.RawEvent{Date: date, Title: title, Description: description}
}

var raw = catalog.RawData{Eras: []catalog.RawEra{
	{Era: "Past", Categories: []catalog.RawCategory{
		{Name: "Ancient & Medieval History", Events: []catalog.RawEvent{
			ev("1500-01-01", "Renaissance Era", "The Renaissance transforms European art, science, and culture"),
			ev("1517-10-31", "Protestant Reformation", "Martin Luther posts 95 Theses, sparking religious reformation"),
			ev("1543-05-24", "Heliocentric Theory", "Copernicus publishes revolutionary theory that Earth orbits the Sun"),
			ev("1564-04-26", "Shakespeare Born", "William Shakespeare, the greatest English writer, is born"),
			ev("1600-02-17", "Giordano Bruno Executed", "Philosopher burned for supporting Copernican heliocentrism"),
			ev("1609-08-25", "Galileo's Telescope", "Galileo presents his telescope to Venetian lawmakers"),
			ev("1687-07-05", "Newton's Principia", "Isaac Newton publishes laws of motion and universal gravitation"),
			ev("1776-07-04", "US Independence", "United States Declaration of Independence adopted"),
			ev("1789-07-14", "French Revolution", "Storming of the Bastille marks beginning of French Revolution"),
		}},
		{Name: "Industrial Revolution", Events: []catalog.RawEvent{
			ev("1712-01-01", "First Steam Engine", "Thomas Newcomen builds first practical steam engine for pumping water"),
			ev("1769-01-01", "Watt's Steam Engine", "James Watt patents improved steam engine with separate condenser"),
			ev("1793-03-14", "Cotton Gin Invented", "Eli Whitney invents cotton gin, revolutionizing textile industry"),
			ev("1804-02-21", "First Steam Locomotive", "Richard Trevithick demonstrates first railway steam locomotive"),
			ev("1825-09-27", "First Public Railway", "Stockton and Darlington Railway opens as first public railway"),
			ev("1831-08-29", "Electromagnetic Induction", "Michael Faraday discovers electromagnetic induction"),
			ev("1856-01-01", "Bessemer Steel Process", "Henry Bessemer patents mass steel production method"),
			ev("1876-03-10", "Telephone Invented", "Alexander Graham Bell patents the telephone"),
			ev("1879-10-21", "Electric Light Bulb", "Thomas Edison successfully tests incandescent light bulb"),
			ev("1885-01-29", "First Automobile", "Karl Benz patents the first true gasoline-powered automobile"),
			ev("1895-12-28", "First Film Screening", "Lumière brothers hold first public film screening in Paris"),
			ev("1903-12-17", "First Powered Flight", "Wright Brothers achieve first controlled powered airplane flight"),
			ev("1908-10-01", "Model T Production", "Ford begins mass production of affordable Model T automobile"),
			ev("1913-12-01", "Assembly Line", "Henry Ford introduces moving assembly line, revolutionizing manufacturing"),
		}},
		{Name: "World Wars Era", Events: []catalog.RawEvent{
			ev("1914-06-28", "Archduke Assassination", "Assassination of Archduke Franz Ferdinand triggers WWI"),
			ev("1914-07-28", "World War I Begins", "Austria-Hungary declares war on Serbia, starting WWI"),
			ev("1917-04-06", "US Enters WWI", "United States declares war on Germany"),
			ev("1918-11-11", "World War I Ends", "Armistice signed at 11am on 11/11, ending WWI"),
			ev("1929-10-29", "Black Tuesday", "Stock market crash triggers the Great Depression"),
			ev("1939-09-01", "World War II Begins", "Germany invades Poland, starting World War II"),
			ev("1941-12-07", "Pearl Harbor Attack", "Japan attacks Pearl Harbor; US enters WWII"),
			ev("1944-06-06", "D-Day Invasion", "Allied forces land on Normandy beaches"),
			ev("1945-05-08", "Victory in Europe", "Nazi Germany surrenders unconditionally"),
			ev("1945-08-06", "Hiroshima", "First atomic bomb used in warfare on Hiroshima"),
			ev("1945-08-15", "WWII Ends", "Japan announces surrender, ending World War II"),
		}},
		{Name: "Space Exploration", Events: []catalog.RawEvent{
			ev("1957-10-04", "Sputnik 1 Launch", "Soviet Union launches first artificial satellite into orbit"),
			ev("1961-04-12", "First Human in Space", "Yuri Gagarin becomes first human to journey into outer space"),
			ev("1962-02-20", "Glenn Orbits Earth", "John Glenn becomes first American to orbit Earth"),
			ev("1963-06-16", "First Woman in Space", "Valentina Tereshkova becomes first woman in space"),
			ev("1969-07-20", "Moon Landing", "Neil Armstrong and Buzz Aldrin walk on the Moon"),
			ev("1971-04-19", "First Space Station", "Soviet Union launches Salyut 1, first space station"),
			ev("1981-04-12", "First Space Shuttle", "Columbia becomes first reusable spacecraft to reach orbit"),
			ev("1986-01-28", "Challenger Disaster", "Space Shuttle Challenger breaks apart 73 seconds after launch"),
			ev("1990-04-24", "Hubble Telescope", "Hubble Space Telescope deployed in Earth orbit"),
			ev("1998-11-20", "ISS Construction", "First module of International Space Station launched"),
			ev("2004-01-04", "Mars Rovers Land", "Spirit and Opportunity rovers begin Mars exploration"),
		}},
		{Name: "Computing Revolution", Events: []catalog.RawEvent{
			ev("1946-02-14", "ENIAC Unveiled", "ENIAC, first general-purpose electronic computer, is unveiled"),
			ev("1947-12-23", "Transistor Invented", "Bell Labs demonstrates the first transistor"),
			ev("1958-09-12", "Integrated Circuit", "Jack Kilby demonstrates first working integrated circuit"),
			ev("1969-10-29", "ARPANET First Message", "First message sent over ARPANET, precursor to the Internet"),
			ev("1971-11-15", "First Microprocessor", "Intel releases 4004, the first commercial microprocessor"),
			ev("1975-04-04", "Microsoft Founded", "Bill Gates and Paul Allen found Microsoft"),
			ev("1976-04-01", "Apple Founded", "Steve Jobs and Steve Wozniak found Apple Computer"),
			ev("1981-08-12", "IBM PC Released", "IBM introduces the Personal Computer, defining the PC standard"),
			ev("1983-01-01", "TCP/IP Adopted", "ARPANET adopts TCP/IP protocol, birth of modern Internet"),
			ev("1984-01-24", "Macintosh Introduced", "Apple introduces the Macintosh with revolutionary GUI"),
			ev("1989-03-12", "WWW Proposed", "Tim Berners-Lee proposes the World Wide Web"),
			ev("1991-08-06", "World Wide Web Live", "First website goes live, making the web publicly available"),
			ev("1995-08-24", "Windows 95", "Microsoft releases Windows 95, revolutionizing PC usage"),
			ev("1998-09-04", "Google Founded", "Larry Page and Sergey Brin found Google Inc."),
			ev("2004-02-04", "Facebook Launched", "Mark Zuckerberg launches Facebook from Harvard"),
			ev("2007-01-09", "iPhone Unveiled", "Steve Jobs unveils iPhone, beginning the smartphone revolution"),
		}},
		{Name: "Science & Medicine", Events: []catalog.RawEvent{
			ev("1859-11-24", "Origin of Species", "Charles Darwin publishes theory of evolution by natural selection"),
			ev("1895-11-08", "X-Rays Discovered", "Wilhelm Röntgen discovers X-rays"),
			ev("1905-06-30", "Special Relativity", "Einstein publishes special theory of relativity (E=mc²)"),
			ev("1928-09-28", "Penicillin Discovered", "Alexander Fleming discovers penicillin antibiotic"),
			ev("1953-04-25", "DNA Structure", "Watson and Crick publish DNA double helix structure"),
			ev("1967-12-03", "First Heart Transplant", "Dr. Christiaan Barnard performs first human heart transplant"),
			ev("1978-07-25", "First IVF Baby", "Louise Brown, first test-tube baby, is born"),
			ev("1996-07-05", "Dolly the Sheep", "First mammal cloned from an adult cell"),
			ev("2003-04-14", "Human Genome Complete", "Human Genome Project completes mapping of human DNA"),
		}},
		{Name: "Political & Social Milestones", Events: []catalog.RawEvent{
			ev("1863-01-01", "Emancipation Proclamation", "Lincoln declares slaves in rebel states free"),
			ev("1865-04-15", "Lincoln Assassinated", "President Abraham Lincoln is assassinated"),
			ev("1893-09-19", "Women's Suffrage NZ", "New Zealand becomes first country with women's voting rights"),
			ev("1920-08-26", "US Women Vote", "19th Amendment grants American women right to vote"),
			ev("1947-08-15", "India Independence", "India gains independence from British rule"),
			ev("1948-05-14", "Israel Founded", "State of Israel declared, recognized by major powers"),
			ev("1963-08-28", "I Have a Dream", "Martin Luther King Jr. delivers iconic speech in Washington"),
			ev("1964-07-02", "Civil Rights Act", "Landmark US legislation outlaws discrimination"),
			ev("1989-11-09", "Berlin Wall Falls", "Fall of Berlin Wall symbolizes end of Cold War"),
			ev("1990-02-11", "Mandela Released", "Nelson Mandela freed after 27 years in prison"),
			ev("1991-12-26", "Soviet Union Dissolves", "USSR officially dissolves, ending the Cold War"),
			ev("1994-04-27", "South Africa Democracy", "Nelson Mandela elected in first multi-racial election"),
		}},
	}},
	{Era: "Present", Categories: []catalog.RawCategory{
		{Name: "Technology Breakthroughs", Events: []catalog.RawEvent{
			ev("2010-01-27", "iPad Announced", "Apple unveils iPad, creating modern tablet market"),
			ev("2010-10-06", "Instagram Launched", "Photo-sharing app Instagram launches on iOS"),
			ev("2011-10-05", "Steve Jobs Passes Away", "Apple co-founder Steve Jobs dies at age 56"),
			ev("2012-04-09", "Facebook Buys Instagram", "Facebook acquires Instagram for $1 billion"),
			ev("2012-05-18", "Facebook IPO", "Facebook goes public at $38 per share"),
			ev("2013-11-15", "PlayStation 4 Released", "Sony releases next-gen gaming console"),
			ev("2014-03-25", "Facebook Buys Oculus", "Facebook acquires Oculus VR for $2 billion"),
			ev("2015-04-24", "Apple Watch Released", "Apple enters wearables market with Apple Watch"),
			ev("2016-07-06", "Pokemon Go Released", "Augmented reality game becomes global phenomenon"),
			ev("2017-11-03", "iPhone X Released", "Apple introduces Face ID and full-screen display"),
			ev("2018-02-06", "SpaceX Falcon Heavy", "SpaceX launches most powerful rocket since Saturn V"),
			ev("2019-04-10", "First Black Hole Image", "Event Horizon Telescope captures first black hole image"),
		}},
		{Name: "AI & Machine Learning", Events: []catalog.RawEvent{
			ev("2011-10-04", "Siri Introduced", "Apple introduces Siri voice assistant with iPhone 4S"),
			ev("2012-06-26", "Google Brain", "Neural network learns to recognize cats from YouTube videos"),
			ev("2014-01-26", "Google Buys DeepMind", "Google acquires AI company DeepMind for $500 million"),
			ev("2015-12-11", "OpenAI Founded", "Elon Musk and others found AI research organization OpenAI"),
			ev("2016-03-15", "AlphaGo Defeats Lee Sedol", "DeepMind's AI defeats world Go champion 4-1"),
			ev("2017-05-27", "AlphaGo Retires", "AlphaGo defeats world #1 Ke Jie, then retires from competition"),
			ev("2017-10-18", "AlphaGo Zero", "AI learns Go from scratch, surpasses all human knowledge"),
			ev("2018-06-15", "GPT-1 Released", "OpenAI releases first Generative Pre-trained Transformer"),
			ev("2019-02-14", "GPT-2 Announced", "OpenAI announces GPT-2, initially withholds full release"),
			ev("2020-06-11", "GPT-3 Released", "OpenAI releases GPT-3 with 175 billion parameters"),
		}},
		{Name: "World Events", Events: []catalog.RawEvent{
			ev("2010-04-20", "Deepwater Horizon", "BP oil spill becomes largest marine oil spill in history"),
			ev("2011-03-11", "Fukushima Disaster", "Earthquake and tsunami cause nuclear disaster in Japan"),
			ev("2011-05-02", "Bin Laden Killed", "US forces kill Al-Qaeda leader Osama bin Laden"),
			ev("2012-08-06", "Curiosity on Mars", "NASA's Curiosity rover successfully lands on Mars"),
			ev("2015-12-12", "Paris Climate Agreement", "195 nations adopt landmark climate change agreement"),
			ev("2016-06-23", "Brexit Vote", "UK votes 52%-48% to leave the European Union"),
			ev("2016-11-08", "Trump Elected", "Donald Trump wins US presidential election"),
			ev("2018-06-12", "US-North Korea Summit", "Historic meeting between Trump and Kim Jong-un"),
			ev("2019-12-31", "COVID-19 First Cases", "First cases of novel coronavirus reported in Wuhan, China"),
			ev("2020-01-31", "UK Leaves EU", "United Kingdom officially exits the European Union"),
			ev("2020-03-11", "COVID-19 Pandemic", "WHO declares COVID-19 a global pandemic"),
		}},
	}},
	{Era: "Future", Categories: []catalog.RawCategory{
		{Name: "AI Revolution", Events: []catalog.RawEvent{
			ev("2021-06-01", "AI Medical Diagnosis", "AI systems predicted to achieve doctor-level diagnosis accuracy"),
			ev("2022-01-01", "AI Writing Tools", "Advanced AI writing assistants predicted for mainstream use"),
			ev("2023-01-01", "AI Art Generation", "AI systems predicted to create professional-quality artwork"),
			ev("2024-01-01", "AI Personal Assistants", "Highly capable AI assistants predicted for daily tasks"),
			ev("2025-01-01", "AI in Education", "AI tutors predicted to revolutionize personalized learning"),
			ev("2027-01-01", "AI-Human Collaboration", "AI predicted to become standard workplace collaborator"),
			ev("2030-01-01", "AGI Progress", "Significant progress toward Artificial General Intelligence predicted"),
			ev("2035-01-01", "AI Governance", "International AI regulation and ethics frameworks predicted"),
			ev("2040-01-01", "AI Scientific Discovery", "AI predicted to independently make major scientific breakthroughs"),
			ev("2050-01-01", "Human-AI Integration", "Deep integration between human cognition and AI predicted"),
		}},
		{Name: "Quantum Computing", Events: []catalog.RawEvent{
			ev("2021-01-01", "50+ Qubit Systems", "Quantum computers with 50+ stable qubits predicted"),
			ev("2023-01-01", "100+ Qubit Milestone", "Quantum computers reaching 100+ qubits predicted"),
			ev("2025-01-01", "Quantum Cloud Access", "Quantum computing predicted available via major cloud platforms"),
			ev("2027-01-01", "Quantum Drug Discovery", "Quantum computers predicted to revolutionize pharmaceutical research"),
			ev("2030-01-01", "Quantum Cryptography", "Quantum-safe encryption predicted to become industry standard"),
			ev("2035-01-01", "Quantum Internet", "First experimental quantum internet networks predicted"),
			ev("2040-01-01", "Quantum Advantage", "Quantum computers predicted to solve previously impossible problems"),
			ev("2050-01-01", "Universal Quantum Computing", "General-purpose quantum computers predicted for widespread use"),
		}},
		{Name: "Space Exploration", Events: []catalog.RawEvent{
			ev("2021-02-01", "Mars Perseverance", "NASA Perseverance rover predicted to land on Mars"),
			ev("2021-12-01", "James Webb Telescope", "Next-generation space telescope predicted to launch"),
			ev("2024-01-01", "Artemis Moon Mission", "NASA predicted to return humans to the Moon"),
			ev("2025-01-01", "Commercial Space Stations", "Private space stations predicted to begin operations"),
			ev("2026-01-01", "SpaceX Starship to Mars", "SpaceX predicted to send Starship toward Mars"),
			ev("2028-01-01", "Lunar Gateway", "Orbital lunar station predicted to be operational"),
			ev("2030-01-01", "First Humans on Mars", "SpaceX or NASA predicted to land humans on Mars"),
			ev("2035-01-01", "Permanent Moon Base", "Permanent human presence on the Moon predicted"),
			ev("2040-01-01", "Mars Colony Started", "First permanent Mars settlement predicted to begin"),
			ev("2050-01-01", "Regular Mars Travel", "Regular Earth-Mars transportation predicted"),
		}},
		{Name: "AI Chips & Hardware", Events: []catalog.RawEvent{
			ev("2021-01-01", "Neural Processing Units", "Dedicated AI chips predicted in most new smartphones"),
			ev("2022-01-01", "AI-Optimized GPUs", "Next-gen GPUs with enhanced AI capabilities predicted"),
			ev("2023-01-01", "Edge AI Devices", "Powerful AI processing in small devices predicted"),
			ev("2025-01-01", "AI Chips Everywhere", "Specialized AI processors predicted in all smart devices"),
			ev("2027-01-01", "Neuromorphic Chips", "Brain-inspired computing chips predicted for commercial use"),
			ev("2030-01-01", "AI Supercomputers", "Exascale AI-dedicated supercomputers predicted"),
			ev("2035-01-01", "Quantum-AI Hybrid", "Quantum-classical hybrid AI processors predicted"),
			ev("2040-01-01", "Molecular Computing", "Molecular-scale computing elements predicted"),
		}},
		{Name: "Society & Environment", Events: []catalog.RawEvent{
			ev("2022-01-01", "Remote Work Standard", "Remote work predicted to become permanent for many jobs"),
			ev("2025-01-01", "Electric Vehicles Dominant", "EVs predicted to outsell gasoline vehicles in major markets"),
			ev("2027-01-01", "Renewable Energy Majority", "Renewables predicted to provide majority of new electricity"),
			ev("2030-01-01", "Smart Cities", "AI-managed smart cities predicted in major metropolitan areas"),
			ev("2035-01-01", "Carbon Capture", "Large-scale carbon capture technology predicted to operate"),
			ev("2040-01-01", "Fusion Power Progress", "Commercial nuclear fusion power plants predicted"),
			ev("2050-01-01", "Net Zero Progress", "Many developed nations predicted to achieve net-zero emissions"),
		}},
	}},
}}
